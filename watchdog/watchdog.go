// Package watchdog wraps WDT_A in its two modes: a watchdog that resets the
// chip on expiry, and an interval timer that only raises SFRIFG1.WDTIFG.
//
// Constrain always holds the counter first, since the chip comes out of reset
// with the watchdog armed. Switching modes holds the counter while WDTTMSEL
// changes.
package watchdog

import (
	"time"

	"msp430hal/clock"
	"msp430hal/errcode"
	"msp430hal/pac"
	"msp430hal/x/timex"
)

var ErrAlreadyStopped error = errcode.AlreadyStopped

// Periods selects the counter length, WDTIS.
type Periods uint8

const (
	Periods2G    Periods = iota // 2^31 clock cycles
	Periods128M                 // 2^27
	Periods8192K                // 2^23
	Periods512K                 // 2^19
	Periods32K                  // 2^15
	Periods8192                 // 2^13
	Periods512                  // 2^9
	Periods64                   // 2^6
)

var periodShift = [...]uint8{31, 27, 23, 19, 15, 13, 9, 6}

// Cycles returns the number of clock cycles before expiry.
func (p Periods) Cycles() uint32 { return 1 << periodShift[p&pac.WDT_A_WDTCTL_WDTIS_Msk] }

type core struct {
	wdt   *pac.WDT_A_Type
	sfr   *pac.SFR_Type
	hz    uint32
	spent bool
}

func (c *core) check(op string) {
	if c.spent {
		panic(&errcode.E{C: errcode.Consumed, Op: op})
	}
}

// write stores v with the password in the high byte. Reads return 0x69
// there, so it is always replaced.
func (c *core) write(v uint16) {
	c.wdt.WDTCTL.Set(v&^pac.WDT_A_WDTCTL_WDTPW_Msk | pac.WDT_A_WDTCTL_WDTPW)
}

func (c *core) modify(clear, set uint16) {
	c.write(c.wdt.WDTCTL.Get()&^clear | set)
}

func (c *core) setClk(op string, ssel uint16, hz uint32) {
	c.check(op)
	bits := c.wdt.WDTCTL.Get()
	c.write(bits | pac.WDT_A_WDTCTL_WDTHOLD)
	c.write(bits&^pac.WDT_A_WDTCTL_WDTSSEL_Msk | ssel)
	c.hz = hz
}

func (c *core) SetAclk(aclk *clock.Aclk) {
	c.setClk("watchdog.SetAclk", pac.WDT_A_WDTCTL_WDTSSEL_ACLK, aclk.Freq())
}

func (c *core) SetSmclk(smclk *clock.Smclk) {
	c.setClk("watchdog.SetSmclk", pac.WDT_A_WDTCTL_WDTSSEL_SMCLK, smclk.Freq())
}

func (c *core) SetVloclk() {
	c.setClk("watchdog.SetVloclk", pac.WDT_A_WDTCTL_WDTSSEL_VLOCLK, clock.VloHz)
}

// Reset restarts the countdown without changing anything else.
func (c *core) Reset() {
	c.check("watchdog.Reset")
	c.modify(0, pac.WDT_A_WDTCTL_WDTCNTCL)
}

func (c *core) Disable() {
	c.check("watchdog.Disable")
	c.modify(0, pac.WDT_A_WDTCTL_WDTHOLD)
}

// Start clears the counter, releases the hold and sets the period in a single
// write.
func (c *core) Start(p Periods) {
	c.check("watchdog.Start")
	c.modify(pac.WDT_A_WDTCTL_WDTHOLD|pac.WDT_A_WDTCTL_WDTIS_Msk,
		pac.WDT_A_WDTCTL_WDTCNTCL|uint16(p)&pac.WDT_A_WDTCTL_WDTIS_Msk)
}

// Cancel holds a running counter. It fails with ErrAlreadyStopped if the
// counter is already held.
func (c *core) Cancel() error {
	c.check("watchdog.Cancel")
	if c.wdt.WDTCTL.HasBits(pac.WDT_A_WDTCTL_WDTHOLD) {
		return ErrAlreadyStopped
	}
	c.modify(0, pac.WDT_A_WDTCTL_WDTHOLD)
	return nil
}

// Timeout returns how long p lasts on the selected clock, or zero if no clock
// has been selected through a Set method.
func (c *core) Timeout(p Periods) time.Duration {
	return timex.Duration(c.hz, p.Cycles())
}

func (c *core) changeMode(op string, tmsel uint16) core {
	c.check(op)
	c.modify(pac.WDT_A_WDTCTL_WDTTMSEL, pac.WDT_A_WDTCTL_WDTHOLD|tmsel)
	c.spent = true
	return core{wdt: c.wdt, sfr: c.sfr, hz: c.hz}
}

// Watchdog resets the chip when the counter expires.
type Watchdog struct{ core }

// Interval raises WDTIFG when the counter expires.
type Interval struct{ core }

// Constrain holds WDT_A and returns it in watchdog mode. sfr gives access to
// the expiry flag used in interval mode.
func Constrain(wdt *pac.WDT_A_Type, sfr *pac.SFR_Type) *Watchdog {
	c := core{wdt: wdt, sfr: sfr}
	c.write(pac.WDT_A_WDTCTL_WDTHOLD)
	return &Watchdog{c}
}

// ToInterval clears any stale expiry flag, then holds the counter and selects
// interval mode.
func (w *Watchdog) ToInterval() *Interval {
	w.check("watchdog.ToInterval")
	w.sfr.SFRIFG1.ClearBits(pac.SFR_SFRIFG1_WDTIFG)
	return &Interval{w.changeMode("watchdog.ToInterval", pac.WDT_A_WDTCTL_WDTTMSEL)}
}

// ToWatchdog holds the counter and selects watchdog mode.
func (i *Interval) ToWatchdog() *Watchdog {
	return &Watchdog{i.changeMode("watchdog.ToWatchdog", 0)}
}

// WaitDone reports whether the interval has elapsed since the last call,
// clearing the latched flag when it has.
func (i *Interval) WaitDone() bool {
	i.check("watchdog.WaitDone")
	if !i.sfr.SFRIFG1.HasBits(pac.SFR_SFRIFG1_WDTIFG) {
		return false
	}
	i.sfr.SFRIFG1.ClearBits(pac.SFR_SFRIFG1_WDTIFG)
	return true
}
