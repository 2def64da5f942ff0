package gpio

import (
	"msp430hal/errcode"
	"msp430hal/pac"
)

// group ties the single-line handles of one Split together.
type group struct {
	num    uint8
	joined bool
}

// Parts holds one single-line handle per bonded line of a port, indexed by
// line number.
type Parts[D any, L Lock] struct {
	Lines []*Pins[D, L]
}

// Line returns the handle for line n.
func (p *Parts[D, L]) Line(n uint8) *Pins[D, L] { return p.Lines[n] }

// Split breaks a whole-port handle into single-line handles in the same state.
// The lines can then move through the state machine independently.
func Split[D any, L Lock](p *Pins[D, L]) *Parts[D, L] {
	const op = "gpio.Split"
	p.check(op)
	if p.group != nil || p.mask != p.port.Mask() {
		panic(&errcode.E{C: errcode.Unsupported, Op: op, Msg: "not a whole port"})
	}
	p.spend(op)

	g := &group{num: p.port.Num}
	parts := &Parts[D, L]{Lines: make([]*Pins[D, L], p.port.Lines)}
	for i := range parts.Lines {
		parts.Lines[i] = &Pins[D, L]{pins{port: p.port, mask: 1 << i, group: g}}
	}
	return parts
}

// Join rebuilds the whole-port handle from every line of one Split. All lines
// must be in the same state; anything else panics with errcode.ForeignParts.
func Join[D any, L Lock](lines ...*Pins[D, L]) *Pins[D, L] {
	const op = "gpio.Join"
	if len(lines) == 0 || lines[0].group == nil || lines[0].group.joined {
		panic(&errcode.E{C: errcode.ForeignParts, Op: op})
	}
	g := lines[0].group

	var seen uint8
	for _, l := range lines {
		l.check(op)
		if l.group != g || seen&l.mask != 0 {
			panic(&errcode.E{C: errcode.ForeignParts, Op: op})
		}
		seen |= l.mask
	}
	port := pac.PortNum(g.num)
	if seen != port.Mask() {
		panic(&errcode.E{C: errcode.ForeignParts, Op: op, Msg: "missing lines"})
	}

	for _, l := range lines {
		l.spent = true
	}
	g.joined = true
	return &Pins[D, L]{pins{port: port, mask: port.Mask()}}
}
