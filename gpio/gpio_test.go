//go:build !tinygo && !baremetal

package gpio

import (
	"errors"
	"testing"

	"msp430hal/errcode"
	"msp430hal/pac"
)

func setup(t *testing.T) (*pac.Peripherals, *Pmm) {
	t.Helper()
	pac.Reset()
	p := pac.Steal()
	p.PMM.PM5CTL0.Set(pac.PMM_PM5CTL0_LOCKLPM5)
	return p, FreezePmm(p.PMM)
}

func TestFreezePmm_ClearsLock(t *testing.T) {
	p, _ := setup(t)
	if p.PMM.PM5CTL0.HasBits(pac.PMM_PM5CTL0_LOCKLPM5) {
		t.Fatal("LOCKLPM5 still set")
	}
}

func TestConstrain_ClearsFunctionSelect(t *testing.T) {
	p, _ := setup(t)
	p.P2.SEL0.Set(0xF0)
	p.P2.SEL1.Set(0x0F)
	port := Constrain(p.P2)
	if p.P2.SEL0.Get() != 0 || p.P2.SEL1.Get() != 0 {
		t.Fatal("SEL0/SEL1 not cleared")
	}
	if port.Mask() != 0xFF || port.Port() != 2 {
		t.Fatalf("mask=%#x port=%d", port.Mask(), port.Port())
	}
}

// The input sequence below must compile and run. Skipping the pull step and
// calling EnableIntrRisingEdge on an Input[Unknown] does not compile.
func TestInputSequence(t *testing.T) {
	p, pmm := setup(t)
	reg := p.P1

	in := PullUp(ToInput(Unlock(Constrain(reg), pmm)))
	if reg.DIR.Get() != 0 || reg.OUT.Get() != 0xFF || reg.REN.Get() != 0xFF {
		t.Fatalf("after PullUp DIR=%#x OUT=%#x REN=%#x", reg.DIR.Get(), reg.OUT.Get(), reg.REN.Get())
	}

	reg.IFG.Set(0xFF)
	armed := EnableIntrRisingEdge(in)
	if reg.IES.Get() != 0 || reg.IFG.Get() != 0 || reg.IE.Get() != 0xFF {
		t.Fatalf("after enable IES=%#x IFG=%#x IE=%#x", reg.IES.Get(), reg.IFG.Get(), reg.IE.Get())
	}

	reg.IN.Set(0x05)
	if Read(armed) != 0x05 || !IsHigh(armed) {
		t.Fatalf("Read=%#x", Read(armed))
	}
	SetIntr(armed)
	if !IntrPending(armed) {
		t.Fatal("SetIntr did not raise IFG")
	}
	ClearIntr(armed)
	if IntrPending(armed) {
		t.Fatal("ClearIntr left IFG set")
	}

	out := ToOutput(DisableIntr(armed))
	if reg.IE.Get() != 0 || reg.DIR.Get() != 0xFF {
		t.Fatalf("after ToOutput IE=%#x DIR=%#x", reg.IE.Get(), reg.DIR.Get())
	}

	Write(out, 0xA5)
	Toggle(out)
	if reg.OUT.Get() != 0x5A {
		t.Fatalf("OUT=%#x want 0x5A", reg.OUT.Get())
	}
}

func TestFallingEdgeAndFloat(t *testing.T) {
	p, pmm := setup(t)
	reg := p.P3
	reg.REN.Set(0xFF)

	armed := EnableIntrFallingEdge(Float(ToInput(Unlock(Constrain(reg), pmm))))
	if reg.REN.Get() != 0 || reg.IES.Get() != 0xFF || reg.IE.Get() != 0xFF {
		t.Fatalf("REN=%#x IES=%#x IE=%#x", reg.REN.Get(), reg.IES.Get(), reg.IE.Get())
	}
	in := PullDown(ToInput(ToOutput(DisableIntr(armed))))
	if reg.OUT.Get() != 0 || reg.REN.Get() != 0xFF || reg.DIR.Get() != 0 {
		t.Fatalf("OUT=%#x REN=%#x DIR=%#x", reg.OUT.Get(), reg.REN.Get(), reg.DIR.Get())
	}
	_ = in
}

func TestSplitLinesAreIndependent(t *testing.T) {
	p, pmm := setup(t)
	reg := p.P4

	parts := Split(Unlock(Constrain(reg), pmm))
	if len(parts.Lines) != 8 {
		t.Fatalf("lines=%d", len(parts.Lines))
	}
	led := ToOutput(parts.Line(6))
	btn := PullUp(ToInput(parts.Line(1)))

	Set(led)
	if reg.DIR.Get() != 0x40 || reg.OUT.Get() != 0x42 || reg.REN.Get() != 0x02 {
		t.Fatalf("DIR=%#x OUT=%#x REN=%#x", reg.DIR.Get(), reg.OUT.Get(), reg.REN.Get())
	}
	Clear(led)
	if reg.OUT.Get() != 0x02 {
		t.Fatalf("Clear: OUT=%#x", reg.OUT.Get())
	}

	reg.IN.Set(0x02)
	if !IsHigh(btn) {
		t.Fatal("line 1 reads low")
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	p, pmm := setup(t)
	parts := Split(Unlock(Constrain(p.P5), pmm))
	if len(parts.Lines) != 5 {
		t.Fatalf("P5 lines=%d want 5", len(parts.Lines))
	}

	outs := make([]*Pins[Output, Unlocked], 0, len(parts.Lines))
	for _, l := range parts.Lines {
		outs = append(outs, ToOutput(l))
	}
	port := Join(outs...)
	if port.Mask() != 0x1F || p.P5.DIR.Get() != 0x1F {
		t.Fatalf("mask=%#x DIR=%#x", port.Mask(), p.P5.DIR.Get())
	}
	Write(port, 0xFF)
	if p.P5.OUT.Get() != 0x1F {
		t.Fatalf("OUT=%#x", p.P5.OUT.Get())
	}

	mustPanic(t, errcode.Consumed, func() { Set(outs[0]) })
	mustPanic(t, errcode.ForeignParts, func() { Join(outs...) })
}

func TestJoinRejectsIncompleteOrForeign(t *testing.T) {
	p, _ := setup(t)
	a := Split(Constrain(p.P1))
	b := Split(Constrain(p.P2))

	mustPanic(t, errcode.ForeignParts, func() { Join(a.Lines[:7]...) })
	mixed := append([]*Pins[Unknown, Locked]{b.Lines[0]}, a.Lines[1:]...)
	mustPanic(t, errcode.ForeignParts, func() { Join(mixed...) })
	mustPanic(t, errcode.ForeignParts, func() { Join(a.Lines[0], a.Lines[0]) })

	if Join(a.Lines...).Mask() != 0xFF {
		t.Fatal("join after failed attempts")
	}
}

func TestAlternateFunctions(t *testing.T) {
	p, _ := setup(t)
	reg := p.P4
	parts := Split(Constrain(reg))

	ToAlternate1(parts.Line(2))
	ToAlternate2(parts.Line(3))
	ToAlternate3(parts.Line(4))
	if reg.SEL0.Get() != 0x14 || reg.SEL1.Get() != 0x18 {
		t.Fatalf("SEL0=%#x SEL1=%#x", reg.SEL0.Get(), reg.SEL1.Get())
	}
}

func TestInterruptsUnsupportedOnP6(t *testing.T) {
	p, pmm := setup(t)
	in := PullUp(ToInput(Unlock(Constrain(p.P6), pmm)))
	mustPanic(t, errcode.Unsupported, func() { EnableIntrRisingEdge(in) })
	// a failed transition leaves the handle usable
	p.P6.IN.Set(0x40)
	if Read(in) != 0x40 {
		t.Fatalf("Read=%#x", Read(in))
	}
}

func TestBatch_OneWritePerRegister(t *testing.T) {
	p, pmm := setup(t)
	reg := p.P3
	b := ToBatch(Unlock(Constrain(reg), pmm))

	b.Line(0).High()
	b.Line(1).Low()
	b.Line(2).PullUp()
	b.Line(3).PullDown()
	for _, x := range b.Lines[4:] {
		x.Float()
	}

	dirW, outW, renW := reg.DIR.Writes(), reg.OUT.Writes(), reg.REN.Writes()
	port, err := b.Write()
	if err != nil {
		t.Fatal(err)
	}
	if reg.DIR.Writes()-dirW != 1 || reg.OUT.Writes()-outW != 1 || reg.REN.Writes()-renW != 1 {
		t.Fatalf("writes DIR=%d OUT=%d REN=%d", reg.DIR.Writes()-dirW, reg.OUT.Writes()-outW, reg.REN.Writes()-renW)
	}
	if reg.DIR.Get() != 0x03 || reg.OUT.Get() != 0x05 || reg.REN.Get() != 0x0C {
		t.Fatalf("DIR=%#x OUT=%#x REN=%#x", reg.DIR.Get(), reg.OUT.Get(), reg.REN.Get())
	}

	out := ToOutput(port)
	Set(out)
	if reg.OUT.Get() != 0xFF {
		t.Fatalf("OUT=%#x", reg.OUT.Get())
	}
	mustPanic(t, errcode.Consumed, func() { b.Line(0).Low() })
}

func TestBatch_UnsetLineIsAnError(t *testing.T) {
	p, _ := setup(t)
	reg := p.P1
	b := ToBatch(Constrain(reg))
	for _, x := range b.Lines[:7] {
		x.Low()
	}

	writes := reg.DIR.Writes()
	if _, err := b.Write(); !errors.Is(err, errcode.ProxyUnset) {
		t.Fatalf("err=%v want %v", err, errcode.ProxyUnset)
	}
	if reg.DIR.Writes() != writes {
		t.Fatal("hardware touched on failed batch")
	}

	b.Line(7).High()
	if _, err := b.Write(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if reg.DIR.Get() != 0xFF || reg.OUT.Get() != 0x80 {
		t.Fatalf("DIR=%#x OUT=%#x", reg.DIR.Get(), reg.OUT.Get())
	}
}

func TestBatchAndSplitNeedWholePort(t *testing.T) {
	p, _ := setup(t)
	parts := Split(Constrain(p.P2))
	mustPanic(t, errcode.Unsupported, func() { ToBatch(parts.Line(0)) })
	mustPanic(t, errcode.Unsupported, func() { Split(parts.Line(1)) })
}

func TestConsumedHandlePanics(t *testing.T) {
	p, pmm := setup(t)
	port := Unlock(Constrain(p.P1), pmm)
	out := ToOutput(port)

	mustPanic(t, errcode.Consumed, func() { ToInput(port) })
	mustPanic(t, errcode.Consumed, func() { Split(port) })
	Set(out)

	locked := Constrain(p.P2)
	mustPanic(t, errcode.Error, func() { Unlock(locked, nil) })
}

func mustPanic(t *testing.T, want errcode.Code, fn func()) {
	t.Helper()
	defer func() {
		if got := errcode.Recovered(recover()); got != want {
			t.Fatalf("recovered %q, want %q", got, want)
		}
	}()
	fn()
}
