package gpio

import (
	"msp430hal/errcode"
	"msp430hal/pac"
)

// Pins is a set of lines on one port in a common state: either the whole port
// (from Constrain or Join) or a single line (from Split).
type Pins[D any, L Lock] struct {
	pins
}

type pins struct {
	port  *pac.Port
	mask  uint8
	group *group // set on lines produced by Split
	spent bool
}

func (p *pins) spend(op string) {
	if p.spent {
		panic(&errcode.E{C: errcode.Consumed, Op: op})
	}
	p.spent = true
}

func (p *pins) check(op string) {
	if p.spent {
		panic(&errcode.E{C: errcode.Consumed, Op: op})
	}
}

func (p *pins) intr(op string) {
	p.check(op)
	if !p.port.HasInterrupts() {
		panic(unsupported(op, p.port))
	}
}

// move consumes p and returns the same lines in state [D, L].
func move[D any, L Lock](p *pins, op string) *Pins[D, L] {
	p.spend(op)
	return &Pins[D, L]{pins{port: p.port, mask: p.mask, group: p.group}}
}

// Mask returns the port bits covered by the handle.
func (p *Pins[D, L]) Mask() uint8 { return p.mask }

// Port returns the port number, 1..6.
func (p *Pins[D, L]) Port() uint8 { return p.port.Num }

// Constrain takes a whole port in its reset state. Alternate functions are
// cleared so every line is plain I/O.
func Constrain(port *pac.Port) *Pins[Unknown, Locked] {
	port.SEL0.Set(0)
	port.SEL1.Set(0)
	return &Pins[Unknown, Locked]{pins{port: port, mask: port.Mask()}}
}

// Unlock marks the lines as live. It performs no register access: pmm is the
// evidence that the global latch is already open.
func Unlock[D any](p *Pins[D, Locked], pmm *Pmm) *Pins[D, Unlocked] {
	if pmm == nil {
		panic(&errcode.E{C: errcode.Error, Op: "gpio.Unlock", Msg: "nil Pmm"})
	}
	return move[D, Unlocked](&p.pins, "gpio.Unlock")
}

func ToInput[D ConvertToInput, L Lock](p *Pins[D, L]) *Pins[Input[Unknown], L] {
	p.check("gpio.ToInput")
	p.port.DIR.ClearBits(p.mask)
	return move[Input[Unknown], L](&p.pins, "gpio.ToInput")
}

func ToOutput[D ConvertToOutput, L Lock](p *Pins[D, L]) *Pins[Output, L] {
	p.check("gpio.ToOutput")
	p.port.DIR.SetBits(p.mask)
	return move[Output, L](&p.pins, "gpio.ToOutput")
}

func PullUp[P Pull, L Lock](p *Pins[Input[P], L]) *Pins[Input[Pulled], L] {
	p.check("gpio.PullUp")
	p.port.OUT.SetBits(p.mask)
	p.port.REN.SetBits(p.mask)
	return move[Input[Pulled], L](&p.pins, "gpio.PullUp")
}

func PullDown[P Pull, L Lock](p *Pins[Input[P], L]) *Pins[Input[Pulled], L] {
	p.check("gpio.PullDown")
	p.port.OUT.ClearBits(p.mask)
	p.port.REN.SetBits(p.mask)
	return move[Input[Pulled], L](&p.pins, "gpio.PullDown")
}

func Float[P Pull, L Lock](p *Pins[Input[P], L]) *Pins[Input[Floating], L] {
	p.check("gpio.Float")
	p.port.REN.ClearBits(p.mask)
	return move[Input[Floating], L](&p.pins, "gpio.Float")
}

// EnableIntrRisingEdge arms the edge detector for low-to-high transitions.
// The pending flag is cleared after the edge select, since changing PxIES can
// set it. Panics with errcode.Unsupported on P5 and P6.
func EnableIntrRisingEdge[P KnownPull](p *Pins[Input[P], Unlocked]) *Pins[InputIntr[P], Unlocked] {
	p.intr("gpio.EnableIntrRisingEdge")
	p.port.IES.ClearBits(p.mask)
	p.port.IFG.ClearBits(p.mask)
	p.port.IE.SetBits(p.mask)
	return move[InputIntr[P], Unlocked](&p.pins, "gpio.EnableIntrRisingEdge")
}

// EnableIntrFallingEdge arms the edge detector for high-to-low transitions.
func EnableIntrFallingEdge[P KnownPull](p *Pins[Input[P], Unlocked]) *Pins[InputIntr[P], Unlocked] {
	p.intr("gpio.EnableIntrFallingEdge")
	p.port.IES.SetBits(p.mask)
	p.port.IFG.ClearBits(p.mask)
	p.port.IE.SetBits(p.mask)
	return move[InputIntr[P], Unlocked](&p.pins, "gpio.EnableIntrFallingEdge")
}

func DisableIntr[P KnownPull](p *Pins[InputIntr[P], Unlocked]) *Pins[Input[P], Unlocked] {
	p.intr("gpio.DisableIntr")
	p.port.IE.ClearBits(p.mask)
	return move[Input[P], Unlocked](&p.pins, "gpio.DisableIntr")
}

// Alternate function select, PxSEL1:PxSEL0 = 01, 10 and 11.

func ToAlternate1[D any, L Lock](p *Pins[D, L]) *Pins[Alternate1, L] {
	p.check("gpio.ToAlternate1")
	p.port.SEL0.SetBits(p.mask)
	p.port.SEL1.ClearBits(p.mask)
	return move[Alternate1, L](&p.pins, "gpio.ToAlternate1")
}

func ToAlternate2[D any, L Lock](p *Pins[D, L]) *Pins[Alternate2, L] {
	p.check("gpio.ToAlternate2")
	p.port.SEL0.ClearBits(p.mask)
	p.port.SEL1.SetBits(p.mask)
	return move[Alternate2, L](&p.pins, "gpio.ToAlternate2")
}

func ToAlternate3[D any, L Lock](p *Pins[D, L]) *Pins[Alternate3, L] {
	p.check("gpio.ToAlternate3")
	p.port.SEL0.SetBits(p.mask)
	p.port.SEL1.SetBits(p.mask)
	return move[Alternate3, L](&p.pins, "gpio.ToAlternate3")
}
