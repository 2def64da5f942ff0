// Package serial configures eUSCI_A1 as a UART.
//
//	cfg := serial.Constrain(p.E_USCI_A1).ParityEven()
//	bc, err := cfg.BaudrateSmclk(115200, smclk)
//	tx, rx := bc.Freeze()
//
// The frame format is set on Config; a baud rate turns it into a BaudConfig,
// which is the only state that can be frozen.
package serial

import (
	"msp430hal/clock"
	"msp430hal/errcode"
	"msp430hal/pac"
)

var (
	ErrBpsTooHigh error = errcode.BpsTooHigh
	ErrBpsTooLow  error = errcode.BpsTooLow
	ErrTxBusy     error = errcode.TxBusy
	ErrRxEmpty    error = errcode.RxEmpty
)

type parity uint8

const (
	parityNone parity = iota
	parityEven
	parityOdd
)

type frame struct {
	msb    bool
	bits7  bool
	stop2  bool
	parity parity
}

// ctlw0 returns UCAxCTLW0 for the frame with UCSWRST clear.
func (f frame) ctlw0(ssel uint16) uint16 {
	v := ssel
	if f.msb {
		v |= pac.E_USCI_A_UCACTLW0_UCMSB
	}
	if f.bits7 {
		v |= pac.E_USCI_A_UCACTLW0_UC7BIT
	}
	if f.stop2 {
		v |= pac.E_USCI_A_UCACTLW0_UCSPB
	}
	switch f.parity {
	case parityEven:
		v |= pac.E_USCI_A_UCACTLW0_UCPEN | pac.E_USCI_A_UCACTLW0_UCPAR
	case parityOdd:
		v |= pac.E_USCI_A_UCACTLW0_UCPEN
	}
	return v
}

// Config is a UART without a baud rate.
type Config struct {
	uca   *pac.E_USCI_A_Type
	f     frame
	spent bool
}

// Constrain takes eUSCI_A1 with LSB first, 8 data bits, 1 stop bit and no
// parity.
func Constrain(uca *pac.E_USCI_A_Type) *Config {
	return &Config{uca: uca}
}

func (c *Config) check(op string) {
	if c.spent {
		panic(&errcode.E{C: errcode.Consumed, Op: op})
	}
}

func (c *Config) MsbFirst() *Config {
	c.check("serial.MsbFirst")
	c.f.msb = true
	return c
}

func (c *Config) LsbFirst() *Config {
	c.check("serial.LsbFirst")
	c.f.msb = false
	return c
}

func (c *Config) Char7Bits() *Config {
	c.check("serial.Char7Bits")
	c.f.bits7 = true
	return c
}

func (c *Config) Char8Bits() *Config {
	c.check("serial.Char8Bits")
	c.f.bits7 = false
	return c
}

func (c *Config) StopBits1() *Config {
	c.check("serial.StopBits1")
	c.f.stop2 = false
	return c
}

func (c *Config) StopBits2() *Config {
	c.check("serial.StopBits2")
	c.f.stop2 = true
	return c
}

func (c *Config) ParityNone() *Config {
	c.check("serial.ParityNone")
	c.f.parity = parityNone
	return c
}

func (c *Config) ParityEven() *Config {
	c.check("serial.ParityEven")
	c.f.parity = parityEven
	return c
}

func (c *Config) ParityOdd() *Config {
	c.check("serial.ParityOdd")
	c.f.parity = parityOdd
	return c
}

// BaudrateAclk clocks the UART from ACLK. On error c stays usable.
func (c *Config) BaudrateAclk(bps uint32, aclk *clock.Aclk) (*BaudConfig, error) {
	return c.baud("serial.BaudrateAclk", bps, aclk.Freq(), pac.E_USCI_A_UCACTLW0_UCSSEL_ACLK)
}

func (c *Config) BaudrateSmclk(bps uint32, smclk *clock.Smclk) (*BaudConfig, error) {
	return c.baud("serial.BaudrateSmclk", bps, smclk.Freq(), pac.E_USCI_A_UCACTLW0_UCSSEL_SMCLK)
}

// BaudrateUclk clocks the UART from the external UCLK pin running at hz.
func (c *Config) BaudrateUclk(bps, hz uint32) (*BaudConfig, error) {
	return c.baud("serial.BaudrateUclk", bps, hz, pac.E_USCI_A_UCACTLW0_UCSSEL_UCLK)
}

func (c *Config) baud(op string, bps, hz uint32, ssel uint16) (*BaudConfig, error) {
	c.check(op)
	b, err := CalcBaud(hz, bps)
	if err != nil {
		return nil, &errcode.E{C: errcode.Of(err), Op: op, Err: err}
	}
	c.spent = true
	return &BaudConfig{uca: c.uca, f: c.f, ssel: ssel, Baud: b}, nil
}

// BaudConfig is a fully specified UART ready to freeze.
type BaudConfig struct {
	Baud

	uca   *pac.E_USCI_A_Type
	f     frame
	ssel  uint16
	spent bool
}

// Freeze programs the UART: hold it in reset, write the baud generator, then
// write the frame format, which releases reset.
func (b *BaudConfig) Freeze() (*Tx, *Rx) {
	if b.spent {
		panic(&errcode.E{C: errcode.Consumed, Op: "serial.Freeze"})
	}
	b.spent = true

	b.uca.UCACTLW0.Set(pac.E_USCI_A_UCACTLW0_UCSWRST)
	b.uca.UCABRW.Set(b.BR)
	b.uca.UCAMCTLW.Set(b.MCTLW())
	b.uca.UCACTLW0.Set(b.f.ctlw0(b.ssel))
	return &Tx{uca: b.uca}, &Rx{uca: b.uca}
}

// Tx is the transmit half.
type Tx struct{ uca *pac.E_USCI_A_Type }

// Write queues one byte, or fails with ErrTxBusy while the buffer is full.
func (t *Tx) Write(b byte) error {
	if !t.uca.UCAIFG.HasBits(pac.E_USCI_A_UCAIFG_UCTXIFG) {
		return ErrTxBusy
	}
	t.uca.UCATXBUF.Set(uint16(b))
	return nil
}

// Busy reports whether a frame is still being shifted out.
func (t *Tx) Busy() bool { return t.uca.UCASTATW.HasBits(pac.E_USCI_A_UCASTATW_UCBUSY) }

// Rx is the receive half.
type Rx struct{ uca *pac.E_USCI_A_Type }

// Read returns the received byte, or ErrRxEmpty if none is waiting.
func (r *Rx) Read() (byte, error) {
	if !r.Ready() {
		return 0, ErrRxEmpty
	}
	return byte(r.uca.UCARXBUF.Get()), nil
}

// Ready reports whether a received byte is waiting.
func (r *Rx) Ready() bool { return r.uca.UCAIFG.HasBits(pac.E_USCI_A_UCAIFG_UCRXIFG) }
