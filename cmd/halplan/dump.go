//go:build !tinygo && !baremetal

package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"msp430hal/pac"
)

// Reg is one simulated register after a plan ran.
type Reg struct {
	Name   string
	Value  uint16
	Writes int
}

type reg16 interface {
	Get() uint16
	Writes() int
}

func dump(p *pac.Peripherals, writtenOnly bool) []Reg {
	named := map[string]reg16{
		"CSCTL0":    &p.CS.CSCTL0,
		"CSCTL1":    &p.CS.CSCTL1,
		"CSCTL2":    &p.CS.CSCTL2,
		"CSCTL3":    &p.CS.CSCTL3,
		"CSCTL4":    &p.CS.CSCTL4,
		"CSCTL5":    &p.CS.CSCTL5,
		"WDTCTL":    &p.WDT_A.WDTCTL,
		"SFRIFG1":   &p.SFR.SFRIFG1,
		"TB0CTL":    &p.TB0.TB0CTL,
		"TB0EX0":    &p.TB0.TB0EX0,
		"UCA1CTLW0": &p.E_USCI_A1.UCACTLW0,
		"UCA1BRW":   &p.E_USCI_A1.UCABRW,
		"UCA1MCTLW": &p.E_USCI_A1.UCAMCTLW,
	}
	for i := range p.TB0.TB0CCTL {
		named[fmt.Sprintf("TB0CCTL%d", i)] = &p.TB0.TB0CCTL[i]
		named[fmt.Sprintf("TB0CCR%d", i)] = &p.TB0.TB0CCR[i]
	}

	regs := make([]Reg, 0, len(named))
	for name, r := range named {
		regs = append(regs, Reg{Name: name, Value: r.Get(), Writes: r.Writes()})
	}
	if writtenOnly {
		regs = slices.DeleteFunc(regs, func(r Reg) bool { return r.Writes == 0 })
	}
	slices.SortFunc(regs, func(a, b Reg) int { return strings.Compare(a.Name, b.Name) })
	return regs
}

func printRegs(w io.Writer, regs []Reg) {
	for _, r := range regs {
		fmt.Fprintf(w, "%-10s 0x%04X  (%d writes)\n", r.Name, r.Value, r.Writes)
	}
}
