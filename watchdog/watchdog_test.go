//go:build !tinygo && !baremetal

package watchdog

import (
	"errors"
	"testing"
	"time"

	"msp430hal/clock"
	"msp430hal/errcode"
	"msp430hal/pac"
)

const (
	pw    = pac.WDT_A_WDTCTL_WDTPW
	hold  = pac.WDT_A_WDTCTL_WDTHOLD
	cntcl = pac.WDT_A_WDTCTL_WDTCNTCL
	tmsel = pac.WDT_A_WDTCTL_WDTTMSEL
)

func TestConstrain_Holds(t *testing.T) {
	pac.Reset()
	p := pac.Steal()
	Constrain(p.WDT_A, p.SFR)
	if got := p.WDT_A.WDTCTL.Get(); got != pw|hold {
		t.Fatalf("WDTCTL=%#x want %#x", got, pw|hold)
	}
}

func TestStartAndCancel(t *testing.T) {
	pac.Reset()
	p := pac.Steal()
	w := Constrain(p.WDT_A, p.SFR)
	w.SetVloclk()

	w.Start(Periods8192)
	want := uint16(pw | pac.WDT_A_WDTCTL_WDTSSEL_VLOCLK | cntcl | uint16(Periods8192))
	if got := p.WDT_A.WDTCTL.Get(); got != want {
		t.Fatalf("after Start WDTCTL=%#x want %#x", got, want)
	}
	if err := w.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := w.Cancel(); !errors.Is(err, ErrAlreadyStopped) {
		t.Fatalf("second Cancel err=%v", err)
	}
	if w.Timeout(Periods8192) != 819200*time.Microsecond {
		t.Fatalf("Timeout=%v", w.Timeout(Periods8192))
	}
}

func TestSetClk_RestoresRunState(t *testing.T) {
	pac.Reset()
	p := pac.Steal()
	w := Constrain(p.WDT_A, p.SFR)
	w.Start(Periods64)

	writes := p.WDT_A.WDTCTL.Writes()
	w.SetAclk(&clock.Aclk{})
	ctl := p.WDT_A.WDTCTL.Get()
	if p.WDT_A.WDTCTL.Writes()-writes != 2 {
		t.Fatalf("SetAclk wrote %d times, want hold then select", p.WDT_A.WDTCTL.Writes()-writes)
	}
	if ctl&hold != 0 || ctl&pac.WDT_A_WDTCTL_WDTSSEL_Msk != pac.WDT_A_WDTCTL_WDTSSEL_ACLK {
		t.Fatalf("WDTCTL=%#x", ctl)
	}
}

func TestIntervalMode(t *testing.T) {
	pac.Reset()
	p := pac.Steal()
	w := Constrain(p.WDT_A, p.SFR)
	w.Start(Periods512)

	p.SFR.SFRIFG1.Set(pac.SFR_SFRIFG1_WDTIFG) // stale expiry from watchdog mode
	iv := w.ToInterval()
	ctl := p.WDT_A.WDTCTL.Get()
	if ctl&tmsel == 0 || ctl&hold == 0 {
		t.Fatalf("ToInterval WDTCTL=%#x", ctl)
	}
	if iv.WaitDone() {
		t.Fatal("stale flag reported as elapsed")
	}

	iv.Start(Periods512)
	p.SFR.SFRIFG1.SetBits(pac.SFR_SFRIFG1_WDTIFG)
	if !iv.WaitDone() {
		t.Fatal("WaitDone missed the flag")
	}
	if iv.WaitDone() {
		t.Fatal("flag not cleared")
	}

	back := iv.ToWatchdog()
	ctl = p.WDT_A.WDTCTL.Get()
	if ctl&tmsel != 0 || ctl&hold == 0 {
		t.Fatalf("ToWatchdog WDTCTL=%#x", ctl)
	}
	back.Reset()
	if !p.WDT_A.WDTCTL.HasBits(cntcl) {
		t.Fatal("Reset did not set WDTCNTCL")
	}
}

func TestConsumedModePanics(t *testing.T) {
	pac.Reset()
	p := pac.Steal()
	w := Constrain(p.WDT_A, p.SFR)
	iv := w.ToInterval()
	iv.ToWatchdog()

	for name, fn := range map[string]func(){
		"Start":      func() { w.Start(Periods64) },
		"ToInterval": func() { w.ToInterval() },
		"WaitDone":   func() { iv.WaitDone() },
	} {
		func() {
			defer func() {
				if c := errcode.Recovered(recover()); c != errcode.Consumed {
					t.Fatalf("%s: recovered %q", name, c)
				}
			}()
			fn()
		}()
	}
}

func TestPeriodsCycles(t *testing.T) {
	if Periods2G.Cycles() != 1<<31 || Periods64.Cycles() != 64 || Periods32K.Cycles() != 32768 {
		t.Fatal("Cycles")
	}
}
