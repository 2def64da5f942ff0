//go:build tinygo || baremetal

package pac

import "unsafe"

var (
	sfr   = (*SFR_Type)(unsafe.Pointer(uintptr(SFR_BASE)))
	pmm   = (*PMM_Type)(unsafe.Pointer(uintptr(PMM_BASE)))
	cs    = (*CS_Type)(unsafe.Pointer(uintptr(CS_BASE)))
	wdt   = (*WDT_A_Type)(unsafe.Pointer(uintptr(WDT_A_BASE)))
	portA = (*PortPair_Type)(unsafe.Pointer(uintptr(PA_BASE)))
	portB = (*PortPair_Type)(unsafe.Pointer(uintptr(PB_BASE)))
	portC = (*PortPair_Type)(unsafe.Pointer(uintptr(PC_BASE)))
	tb0   = (*TB0_Type)(unsafe.Pointer(uintptr(TB0_BASE)))
	uca1  = (*E_USCI_A_Type)(unsafe.Pointer(uintptr(E_USCI_A1_BASE)))
)
