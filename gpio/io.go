package gpio

// Read returns the input bits of the handle's lines; other bits are zero.
func Read[D KnownInput](p *Pins[D, Unlocked]) uint8 {
	p.check("gpio.Read")
	return p.port.IN.Get() & p.mask
}

// IsHigh reports whether any of the handle's lines reads high.
func IsHigh[D KnownInput](p *Pins[D, Unlocked]) bool {
	return Read(p) != 0
}

func ClearIntr[D KnownInput](p *Pins[D, Unlocked]) {
	p.intr("gpio.ClearIntr")
	p.port.IFG.ClearBits(p.mask)
}

// SetIntr raises the pending flag in software.
func SetIntr[D KnownInput](p *Pins[D, Unlocked]) {
	p.intr("gpio.SetIntr")
	p.port.IFG.SetBits(p.mask)
}

func IntrPending[D KnownInput](p *Pins[D, Unlocked]) bool {
	p.intr("gpio.IntrPending")
	return p.port.IFG.HasBits(p.mask)
}

// Write sets the output latch of the handle's lines to the matching bits of v.
func Write(p *Pins[Output, Unlocked], v uint8) {
	p.check("gpio.Write")
	out := p.port.OUT
	out.Set(out.Get()&^p.mask | v&p.mask)
}

func Set(p *Pins[Output, Unlocked]) {
	p.check("gpio.Set")
	p.port.OUT.SetBits(p.mask)
}

func Clear(p *Pins[Output, Unlocked]) {
	p.check("gpio.Clear")
	p.port.OUT.ClearBits(p.mask)
}

func Toggle(p *Pins[Output, Unlocked]) {
	p.check("gpio.Toggle")
	out := p.port.OUT
	out.Set(out.Get() ^ p.mask)
}
