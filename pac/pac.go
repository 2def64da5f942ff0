package pac

import "msp430hal/errcode"

// Peripherals holds one handle per register block touched by the HAL.
type Peripherals struct {
	SFR       *SFR_Type
	PMM       *PMM_Type
	CS        *CS_Type
	WDT_A     *WDT_A_Type
	P1        *Port
	P2        *Port
	P3        *Port
	P4        *Port
	P5        *Port
	P6        *Port
	TB0       *TB0_Type
	E_USCI_A1 *E_USCI_A_Type
}

var (
	taken bool

	ports = [6]*Port{
		newPort(portA, 1, 8, true),
		newPort(portA, 2, 8, true),
		newPort(portB, 3, 8, true),
		newPort(portB, 4, 8, true),
		newPort(portC, 5, 5, false),
		newPort(portC, 6, 7, false),
	}
)

// Take returns the peripherals the first time it is called. Later calls fail
// with errcode.AlreadyTaken so only one owner exists per register block.
func Take() (*Peripherals, error) {
	if taken {
		return nil, &errcode.E{C: errcode.AlreadyTaken, Op: "pac.Take"}
	}
	taken = true
	return Steal(), nil
}

// Steal returns the peripherals without checking ownership. It is meant for
// code that already holds a proof of ownership, such as split pin views that
// need their port back.
func Steal() *Peripherals {
	return &Peripherals{
		SFR:       sfr,
		PMM:       pmm,
		CS:        cs,
		WDT_A:     wdt,
		P1:        ports[0],
		P2:        ports[1],
		P3:        ports[2],
		P4:        ports[3],
		P5:        ports[4],
		P6:        ports[5],
		TB0:       tb0,
		E_USCI_A1: uca1,
	}
}

// PortNum returns the port numbered n (1..6), or nil.
func PortNum(n uint8) *Port {
	if n < 1 || int(n) > len(ports) {
		return nil
	}
	return ports[n-1]
}
