package timer

import (
	"msp430hal/errcode"
	"msp430hal/pac"
)

type CaptureMode uint8

const (
	NoCapture CaptureMode = iota
	Rising
	Falling
	Both
)

// CaptureSelect picks the capture input, CCIS.
type CaptureSelect uint8

const (
	CapInputA CaptureSelect = iota
	CapInputB
	Gnd
	Vcc
)

type chanConfig struct {
	mode CaptureMode
	sel  CaptureSelect
}

// CaptureConfig sets up the three capture channels before the counter runs.
type CaptureConfig struct {
	cfg   *Config
	chans [3]chanConfig
	spent bool
}

// ConfigCapture moves to capture setup. Every channel starts disabled on GND.
func (c *Config) ConfigCapture() *CaptureConfig {
	c.spend("timer.ConfigCapture")
	cc := &CaptureConfig{cfg: c}
	for i := range cc.chans {
		cc.chans[i] = chanConfig{mode: NoCapture, sel: Gnd}
	}
	return cc
}

func (cc *CaptureConfig) check(op string) {
	if cc.spent {
		panic(&errcode.E{C: errcode.Consumed, Op: op})
	}
}

// Chan configures channel n (0..2).
func (cc *CaptureConfig) Chan(n int, mode CaptureMode, sel CaptureSelect) *CaptureConfig {
	const op = "timer.CaptureConfig.Chan"
	cc.check(op)
	if n < 0 || n >= len(cc.chans) {
		panic(&errcode.E{C: errcode.Unsupported, Op: op, Msg: "channel out of range"})
	}
	cc.chans[n] = chanConfig{mode: mode & 3, sel: sel & 3}
	return cc
}

// Freeze commits the clock setup, arms every channel in synchronous capture
// mode and starts the counter in continuous mode.
func (cc *CaptureConfig) Freeze() *Capture {
	cc.check("timer.CaptureConfig.Freeze")
	cc.spent = true

	tb := cc.cfg.tb
	cc.cfg.commit()
	for n, ch := range cc.chans {
		tb.TB0CCTL[n].Set(pac.TB0_TB0CCTL_CAP | pac.TB0_TB0CCTL_SCS |
			uint16(ch.mode)<<pac.TB0_TB0CCTL_CM_Pos |
			uint16(ch.sel)<<pac.TB0_TB0CCTL_CCIS_Pos)
	}
	ctl := tb.TB0CTL.Get()
	tb.TB0CTL.Set(ctl&^pac.TB0_TB0CTL_MC_Msk | pac.TB0_TB0CTL_TBCLR | pac.TB0_TB0CTL_MC_CONTINUOUS)

	return &Capture{
		Chan0: &CaptureChannel{tb: tb, n: 0},
		Chan1: &CaptureChannel{tb: tb, n: 1},
		Chan2: &CaptureChannel{tb: tb, n: 2},
	}
}

type Capture struct {
	Chan0, Chan1, Chan2 *CaptureChannel
}

type CaptureChannel struct {
	tb *pac.TB0_Type
	n  int
}

// Capture returns the latest captured counter value.
//
//	(v, nil)          new value
//	(0, ErrNoCapture) nothing captured since the last call
//	(v, ErrOverrun)   v is valid but at least one edge was lost
//
// COV is checked before and after reading TB0CCRn so a second edge landing
// between the flag test and the read is reported.
func (c *CaptureChannel) Capture() (uint16, error) {
	cctl := &c.tb.TB0CCTL[c.n]
	ccr := &c.tb.TB0CCR[c.n]

	v := cctl.Get()
	if v&pac.TB0_TB0CCTL_COV != 0 {
		val := ccr.Get()
		c.clear()
		return val, ErrOverrun
	}
	if v&pac.TB0_TB0CCTL_CCIFG == 0 {
		return 0, ErrNoCapture
	}
	val := ccr.Get()
	overrun := cctl.HasBits(pac.TB0_TB0CCTL_COV)
	c.clear()
	if overrun {
		return val, ErrOverrun
	}
	return val, nil
}

func (c *CaptureChannel) clear() {
	c.tb.TB0CCTL[c.n].ClearBits(pac.TB0_TB0CCTL_CCIFG | pac.TB0_TB0CCTL_COV)
}
