// Package timer drives Timer_B0 as one of three views over the same counter:
// a periodic timer with two sub-timers, a pair of PWM outputs, or three
// capture channels. Each view is reached from a Config, which commits the
// clock source and prescalers exactly once.
package timer

import (
	"msp430hal/clock"
	"msp430hal/errcode"
	"msp430hal/pac"
)

var (
	ErrAlreadyStopped error = errcode.AlreadyStopped
	ErrNoCapture      error = errcode.NoCapture
	ErrOverrun        error = errcode.Overrun
)

// Div is the first prescaler stage, ID.
type Div uint8

const (
	Div1 Div = iota
	Div2
	Div4
	Div8
)

// DivEx is the second prescaler stage, TBIDEX: divide by value+1.
type DivEx uint8

const (
	DivEx1 DivEx = iota
	DivEx2
	DivEx3
	DivEx4
	DivEx5
	DivEx6
	DivEx7
	DivEx8
)

// Config collects the counter clock setup. The counter stays stopped until
// one of the views starts it.
type Config struct {
	tb    *pac.TB0_Type
	ssel  uint16
	srcHz uint32
	div   Div
	divEx DivEx
	spent bool
}

// Constrain takes TB0 with TBCLK undivided as the source.
func Constrain(tb *pac.TB0_Type) *Config {
	return &Config{tb: tb, ssel: pac.TB0_TB0CTL_TBSSEL_TBCLK}
}

func (c *Config) check(op string) {
	if c.spent {
		panic(&errcode.E{C: errcode.Consumed, Op: op})
	}
}

func (c *Config) spend(op string) {
	c.check(op)
	c.spent = true
}

func (c *Config) UseAclk(aclk *clock.Aclk) *Config {
	return c.use("timer.UseAclk", pac.TB0_TB0CTL_TBSSEL_ACLK, aclk.Freq())
}

func (c *Config) UseSmclk(smclk *clock.Smclk) *Config {
	return c.use("timer.UseSmclk", pac.TB0_TB0CTL_TBSSEL_SMCLK, smclk.Freq())
}

// UseInclk and UseTbclk select external pins; TickHz reports 0 for them.
func (c *Config) UseInclk() *Config { return c.use("timer.UseInclk", pac.TB0_TB0CTL_TBSSEL_INCLK, 0) }
func (c *Config) UseTbclk() *Config { return c.use("timer.UseTbclk", pac.TB0_TB0CTL_TBSSEL_TBCLK, 0) }

func (c *Config) use(op string, ssel uint16, hz uint32) *Config {
	c.check(op)
	c.ssel, c.srcHz = ssel, hz
	return c
}

func (c *Config) SetDiv(d Div) *Config {
	c.check("timer.SetDiv")
	c.div = d & 3
	return c
}

func (c *Config) SetDivEx(d DivEx) *Config {
	c.check("timer.SetDivEx")
	c.divEx = d & pac.TB0_TB0EX0_TBIDEX_Msk
	return c
}

// TickHz is the counter rate after both prescalers, or 0 for external clocks.
func (c *Config) TickHz() uint32 {
	return c.srcHz >> c.div / (uint32(c.divEx) + 1)
}

// commit writes the shared registers: clear, extended divider, then source
// and divider. TBIDEX only takes effect after TBCLR.
func (c *Config) commit() {
	c.tb.TB0CTL.Set(pac.TB0_TB0CTL_TBCLR)
	c.tb.TB0EX0.Set(uint16(c.divEx))
	c.tb.TB0CTL.Set(c.ssel | uint16(c.div)<<pac.TB0_TB0CTL_ID_Pos)
}
