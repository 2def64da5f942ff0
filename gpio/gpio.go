// Package gpio models the MSP430FR2355 digital I/O ports as typestate handles.
//
// A handle is a *Pins[D, L]: D is the direction state and L the lock state.
// Transitions are free functions whose type constraints admit only the states
// the hardware allows, so an illegal sequence does not compile:
//
//	pmm := gpio.FreezePmm(p.PMM)
//	p1 := gpio.Unlock(gpio.Constrain(p.P1), pmm)
//	in := gpio.EnableIntrRisingEdge(gpio.PullUp(gpio.ToInput(p1)))
//	// gpio.EnableIntrRisingEdge(gpio.ToInput(p1)) is rejected: the pull is Unknown.
//
// Every transition consumes its argument. Go values can be copied, so reuse
// is caught at run time and panics with errcode.Consumed.
package gpio

import (
	"msp430hal/errcode"
	"msp430hal/pac"
)

// Unknown is the reset state: direction or pull has not been set.
type Unknown struct{}

type Output struct{}

// Input is an input with interrupts disabled.
type Input[P Pull] struct{}

// InputIntr is an input with its edge interrupt enabled.
type InputIntr[P KnownPull] struct{}

// Alternate function states.
type (
	Alternate1 struct{}
	Alternate2 struct{}
	Alternate3 struct{}
)

// Mixed is a port whose lines were configured individually by a Batch.
type Mixed struct{}

// Pull states.
type (
	Pulled   struct{}
	Floating struct{}
)

// Lock states.
type (
	Locked   struct{}
	Unlocked struct{}
)

type Lock interface{ Locked | Unlocked }

type Pull interface{ Unknown | Pulled | Floating }

type KnownPull interface{ Pulled | Floating }

// ConvertToInput lists the states ToInput accepts.
type ConvertToInput interface {
	Output | Unknown | Mixed
}

// ConvertToOutput lists the states ToOutput accepts. Inputs with interrupts
// enabled are absent: the edge detector must be disabled first.
type ConvertToOutput interface {
	Unknown | Input[Unknown] | Input[Pulled] | Input[Floating] | Mixed
}

// KnownInput lists input states that can be read.
type KnownInput interface {
	Input[Pulled] | Input[Floating] | InputIntr[Pulled] | InputIntr[Floating]
}

// Pmm proves LOCKLPM5 has been cleared. It is shared by every Unlock call.
type Pmm struct{}

// FreezePmm releases the power-on I/O latch. Until it runs, register writes
// to the ports are not reflected on the pins.
func FreezePmm(pmm *pac.PMM_Type) *Pmm {
	pmm.PM5CTL0.ClearBits(pac.PMM_PM5CTL0_LOCKLPM5)
	return &Pmm{}
}

func unsupported(op string, p *pac.Port) *errcode.E {
	return &errcode.E{C: errcode.Unsupported, Op: op, Msg: "port " + string(rune('0'+p.Num)) + " has no interrupt logic"}
}
