//go:build !tinygo && !baremetal

package pac

// Host builds back every register block with ordinary memory.

var (
	sfr   = new(SFR_Type)
	pmm   = new(PMM_Type)
	cs    = new(CS_Type)
	wdt   = new(WDT_A_Type)
	portA = new(PortPair_Type)
	portB = new(PortPair_Type)
	portC = new(PortPair_Type)
	tb0   = new(TB0_Type)
	uca1  = new(E_USCI_A_Type)
)

// Reset zeroes all simulated registers, drops read hooks and write counters,
// and makes Take available again. Port handles keep their addresses.
func Reset() {
	*sfr = SFR_Type{}
	*pmm = PMM_Type{}
	*cs = CS_Type{}
	*wdt = WDT_A_Type{}
	*portA = PortPair_Type{}
	*portB = PortPair_Type{}
	*portC = PortPair_Type{}
	*tb0 = TB0_Type{}
	*uca1 = E_USCI_A_Type{}
	taken = false
}
