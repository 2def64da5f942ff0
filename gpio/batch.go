package gpio

import (
	"strconv"

	"msp430hal/errcode"
)

type intent uint8

const (
	unset intent = iota
	high
	low
	pullUp
	pullDown
	float
)

// bits returns the PxDIR, PxOUT and PxREN contribution of a line.
func (i intent) bits() (dir, out, ren, ok bool) {
	switch i {
	case high:
		return true, true, false, true
	case low:
		return true, false, false, true
	case pullUp:
		return false, true, true, true
	case pullDown:
		return false, false, true, true
	case float:
		return false, false, false, true
	}
	return false, false, false, false
}

// Proxy records the intended final state of one line. Nothing touches the
// hardware until Batch.Write.
type Proxy struct {
	line   uint8
	intent intent
	owner  *pins
}

func (x *Proxy) set(i intent) {
	x.owner.check("gpio.Proxy")
	x.intent = i
}

func (x *Proxy) High()     { x.set(high) }
func (x *Proxy) Low()      { x.set(low) }
func (x *Proxy) PullUp()   { x.set(pullUp) }
func (x *Proxy) PullDown() { x.set(pullDown) }
func (x *Proxy) Float()    { x.set(float) }

// Batch configures every line of a port with one write per control register,
// so lines set up side by side cannot clobber each other's bits.
type Batch[L Lock] struct {
	Lines []*Proxy
	pins
}

// ToBatch turns a whole-port handle into a batch with one proxy per line.
func ToBatch[D any, L Lock](p *Pins[D, L]) *Batch[L] {
	const op = "gpio.ToBatch"
	p.check(op)
	if p.group != nil || p.mask != p.port.Mask() {
		panic(&errcode.E{C: errcode.Unsupported, Op: op, Msg: "not a whole port"})
	}
	p.spend(op)

	b := &Batch[L]{pins: pins{port: p.port, mask: p.mask}}
	b.Lines = make([]*Proxy, p.port.Lines)
	for i := range b.Lines {
		b.Lines[i] = &Proxy{line: uint8(i), owner: &b.pins}
	}
	return b
}

// Line returns the proxy for line n.
func (b *Batch[L]) Line(n uint8) *Proxy { return b.Lines[n] }

// Write commits every proxy with exactly one write each to PxOUT, PxREN and
// PxDIR. A line without a recorded intent fails with errcode.ProxyUnset and
// leaves both the hardware and the batch untouched.
func (b *Batch[L]) Write() (*Pins[Mixed, L], error) {
	const op = "gpio.Batch.Write"
	b.check(op)

	var dir, out, ren uint8
	for _, x := range b.Lines {
		d, o, r, ok := x.intent.bits()
		if !ok {
			return nil, &errcode.E{C: errcode.ProxyUnset, Op: op, Msg: "line " + strconv.Itoa(int(x.line))}
		}
		bit := uint8(1) << x.line
		if d {
			dir |= bit
		}
		if o {
			out |= bit
		}
		if r {
			ren |= bit
		}
	}

	b.port.OUT.Set(out)
	b.port.REN.Set(ren)
	b.port.DIR.Set(dir)
	return move[Mixed, L](&b.pins, op), nil
}
