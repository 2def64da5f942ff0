//go:build !tinygo && !baremetal

package pac

import (
	"errors"
	"testing"

	"msp430hal/errcode"
)

func TestTake_OnlyOnce(t *testing.T) {
	Reset()
	p, err := Take()
	if err != nil || p == nil {
		t.Fatalf("first Take: p=%v err=%v", p, err)
	}
	if _, err := Take(); !errors.Is(err, errcode.AlreadyTaken) {
		t.Fatalf("second Take err=%v; want %v", err, errcode.AlreadyTaken)
	}
	Reset()
	if _, err := Take(); err != nil {
		t.Fatalf("Take after Reset: %v", err)
	}
}

func TestPorts_PairingAndLines(t *testing.T) {
	Reset()
	p := Steal()
	if p.P1.OUT == p.P2.OUT {
		t.Fatal("P1 and P2 share an OUT register")
	}
	if p.P1.OUT != &portA.OUT[0] || p.P2.OUT != &portA.OUT[1] {
		t.Fatal("P1/P2 not mapped to low/high bytes of PA")
	}
	if p.P4.DIR != &portB.DIR[1] {
		t.Fatal("P4 not mapped to PB high byte")
	}
	cases := []struct {
		port *Port
		mask uint8
		intr bool
	}{
		{p.P1, 0xFF, true},
		{p.P4, 0xFF, true},
		{p.P5, 0x1F, false},
		{p.P6, 0x7F, false},
	}
	for _, c := range cases {
		if c.port.Mask() != c.mask {
			t.Fatalf("P%d mask=%#x want %#x", c.port.Num, c.port.Mask(), c.mask)
		}
		if c.port.HasInterrupts() != c.intr {
			t.Fatalf("P%d HasInterrupts=%v", c.port.Num, c.port.HasInterrupts())
		}
	}
	if PortNum(0) != nil || PortNum(7) != nil || PortNum(3) != p.P3 {
		t.Fatal("PortNum bounds")
	}
}

func TestRegister_HostSemantics(t *testing.T) {
	var r Register16
	r.Set(0x00F0)
	r.SetBits(0x0001)
	r.ClearBits(0x0010)
	if r.Get() != 0x00E1 {
		t.Fatalf("got %#x", r.Get())
	}
	r.ReplaceBits(0x1, 0x3, 4)
	if r.Get() != 0x00D1 {
		t.Fatalf("ReplaceBits got %#x", r.Get())
	}
	if !r.HasBits(0x0001) || r.HasBits(0x0002) {
		t.Fatal("HasBits")
	}
	if r.Writes() != 4 {
		t.Fatalf("Writes=%d want 4", r.Writes())
	}
	reads := 0
	r.OnRead(func() { reads++ })
	_ = r.Get()
	_ = r.Get()
	if reads != 2 {
		t.Fatalf("hook ran %d times", reads)
	}
}

func TestReset_ClearsState(t *testing.T) {
	Reset()
	p := Steal()
	p.CS.CSCTL5.Set(0x1234)
	p.P3.OUT.Set(0xAA)
	Reset()
	if p.CS.CSCTL5.Get() != 0 || p.P3.OUT.Get() != 0 || p.P3.OUT.Writes() != 0 {
		t.Fatal("Reset left state behind")
	}
}
