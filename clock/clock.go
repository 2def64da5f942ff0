// Package clock configures the MSP430FR2355 clock system (CS).
//
// The clock tree is built through an ordered chain of handle types so that an
// invalid intermediate state cannot be expressed:
//
//	Constrain -> *Config -> *MclkDefined -> *SmclkDefined | *SmclkDisabled -> Freeze
//
// Every transition consumes its receiver; reusing a consumed handle panics
// with errcode.Consumed. Freeze commits all CS registers in one pass and
// returns read-only frequency handles (Mclk, Smclk, Aclk) that other
// peripherals borrow to pick their clock source.
package clock

import (
	"msp430hal/errcode"
	"msp430hal/pac"
)

const (
	RefoHz uint32 = 32768 // internal reference oscillator
	VloHz  uint32 = 10000 // very-low-power oscillator

	// MaxDcoMultiplier is the largest FLL multiplier the HAL will program.
	MaxDcoMultiplier = 768
	DcoMaxHz         = RefoHz * MaxDcoMultiplier

	MclkMaxDivExp  uint8 = 7
	SmclkMaxDivExp uint8 = 3
)

var (
	ErrTooHigh error = errcode.FreqTooHigh
	ErrTooLow  error = errcode.FreqTooLow
)

// Clock is implemented by the frozen frequency handles.
type Clock interface {
	Freq() uint32
}

// Mclk is the committed main clock.
type Mclk struct{ freq uint32 }

// Smclk is the committed sub-main clock.
type Smclk struct{ freq uint32 }

// Aclk is the committed auxiliary clock.
type Aclk struct{ freq uint32 }

func (c *Mclk) Freq() uint32  { return c.freq }
func (c *Smclk) Freq() uint32 { return c.freq }
func (c *Aclk) Freq() uint32  { return c.freq }

// SmclkDiv is an explicit SMCLK divider relative to MCLK.
type SmclkDiv uint8

const (
	SmclkDiv1 SmclkDiv = iota
	SmclkDiv2
	SmclkDiv4
	SmclkDiv8
)

type mclkSource uint8

const (
	mclkRefo mclkSource = iota
	mclkVlo
	mclkDco
)

func (s mclkSource) selms() uint16 {
	switch s {
	case mclkVlo:
		return pac.CS_CSCTL4_SELMS_VLOCLK
	case mclkDco:
		return pac.CS_CSCTL4_SELMS_DCOCLKDIV
	default:
		return pac.CS_CSCTL4_SELMS_REFOCLK
	}
}

type aclkSource uint8

const (
	aclkRefo aclkSource = iota
	aclkVlo
)

func (s aclkSource) sela() uint16 {
	if s == aclkVlo {
		return pac.CS_CSCTL4_SELA_VLOCLK
	}
	return pac.CS_CSCTL4_SELA_REFOCLK
}

func (s aclkSource) freq() uint32 {
	if s == aclkVlo {
		return VloHz
	}
	return RefoHz
}

// tree is the in-progress configuration carried through every state.
type tree struct {
	cs *pac.CS_Type

	mclkSrc    mclkSource
	multiplier uint16
	dcoRange   DcoRange
	mclkDiv    uint8
	mclkFreq   uint32

	smclkDiv uint8
	smclkOff bool

	aclk aclkSource

	spent bool
}

func (t *tree) check(op string) {
	if t.spent {
		panic(&errcode.E{C: errcode.Consumed, Op: op})
	}
}

// spend marks the handle used and returns a copy for the next state.
func (t *tree) spend(op string) tree {
	t.check(op)
	t.spent = true
	next := *t
	next.spent = false
	return next
}

// Config is the clock tree before MCLK has been chosen.
type Config struct{ t tree }

// MclkDefined has MCLK resolved; SMCLK is next.
type MclkDefined struct{ t tree }

// SmclkDefined has SMCLK running off MCLK and is ready to freeze.
type SmclkDefined struct{ t tree }

// SmclkDisabled has SMCLK switched off and is ready to freeze.
type SmclkDisabled struct{ t tree }

// Constrain takes ownership of the CS block. The returned configuration
// starts from REFOCLK for MCLK, SMCLK and ACLK, all undivided.
func Constrain(cs *pac.CS_Type) *Config {
	return &Config{t: tree{
		cs:       cs,
		mclkSrc:  mclkRefo,
		mclkFreq: RefoHz,
		aclk:     aclkRefo,
	}}
}

// MclkRefoclk sources MCLK from REFOCLK divided to the nearest hz.
// On error the configuration is left usable.
func (c *Config) MclkRefoclk(hz uint32) (*MclkDefined, error) {
	return c.fixed("clock.MclkRefoclk", mclkRefo, RefoHz, hz)
}

// MclkVloclk sources MCLK from VLOCLK divided to the nearest hz.
func (c *Config) MclkVloclk(hz uint32) (*MclkDefined, error) {
	return c.fixed("clock.MclkVloclk", mclkVlo, VloHz, hz)
}

func (c *Config) fixed(op string, src mclkSource, srcHz, hz uint32) (*MclkDefined, error) {
	c.t.check(op)
	freq, div, err := MatchDivider(hz, srcHz, MclkMaxDivExp)
	if err != nil {
		return nil, err
	}
	t := c.t.spend(op)
	t.mclkSrc = src
	t.mclkFreq = freq
	t.mclkDiv = div
	return &MclkDefined{t: t}, nil
}

// MclkDcoclk sources MCLK from the FLL-stabilised DCO at the multiple of
// REFOCLK nearest to hz. hz must lie in [RefoHz, DcoMaxHz].
func (c *Config) MclkDcoclk(hz uint32) (*MclkDefined, error) {
	const op = "clock.MclkDcoclk"
	c.t.check(op)
	freq, mul, rng, err := MatchDco(hz)
	if err != nil {
		return nil, err
	}
	t := c.t.spend(op)
	t.mclkSrc = mclkDco
	t.multiplier = mul
	t.dcoRange = rng
	t.mclkFreq = freq
	t.mclkDiv = 0
	return &MclkDefined{t: t}, nil
}

// MclkDefault keeps MCLK on undivided REFOCLK.
func (c *Config) MclkDefault() *MclkDefined {
	return &MclkDefined{t: c.t.spend("clock.MclkDefault")}
}

func (c *Config) AclkRefoclk() *Config {
	c.t.check("clock.AclkRefoclk")
	c.t.aclk = aclkRefo
	return c
}

func (c *Config) AclkVloclk() *Config {
	c.t.check("clock.AclkVloclk")
	c.t.aclk = aclkVlo
	return c
}

// MclkFreq reports the frequency MCLK will run at once frozen.
func (m *MclkDefined) MclkFreq() uint32 { return m.t.mclkFreq }

// SmclkOn runs SMCLK at the divider of MCLK closest to hz. It never fails:
// targets outside the reachable range clamp to the nearest divider.
func (m *MclkDefined) SmclkOn(hz uint32) *SmclkDefined {
	t := m.t.spend("clock.SmclkOn")
	_, t.smclkDiv = nearestDivider(hz, t.mclkFreq, SmclkMaxDivExp)
	return &SmclkDefined{t: t}
}

// SmclkDivide runs SMCLK at MCLK divided by div.
func (m *MclkDefined) SmclkDivide(div SmclkDiv) *SmclkDefined {
	t := m.t.spend("clock.SmclkDivide")
	t.smclkDiv = uint8(div) & SmclkMaxDivExp
	return &SmclkDefined{t: t}
}

// SmclkDefault runs SMCLK at MCLK undivided.
func (m *MclkDefined) SmclkDefault() *SmclkDefined {
	t := m.t.spend("clock.SmclkDefault")
	t.smclkDiv = 0
	return &SmclkDefined{t: t}
}

// SmclkOff switches SMCLK off. Peripherals cannot borrow an Smclk afterwards.
func (m *MclkDefined) SmclkOff() *SmclkDisabled {
	t := m.t.spend("clock.SmclkOff")
	t.smclkOff = true
	return &SmclkDisabled{t: t}
}

func (m *MclkDefined) AclkRefoclk() *MclkDefined {
	m.t.check("clock.AclkRefoclk")
	m.t.aclk = aclkRefo
	return m
}

func (m *MclkDefined) AclkVloclk() *MclkDefined {
	m.t.check("clock.AclkVloclk")
	m.t.aclk = aclkVlo
	return m
}

// SmclkFreq reports the frequency SMCLK will run at once frozen.
func (s *SmclkDefined) SmclkFreq() uint32 { return s.t.mclkFreq >> s.t.smclkDiv }

func (s *SmclkDefined) AclkRefoclk() *SmclkDefined {
	s.t.check("clock.AclkRefoclk")
	s.t.aclk = aclkRefo
	return s
}

func (s *SmclkDefined) AclkVloclk() *SmclkDefined {
	s.t.check("clock.AclkVloclk")
	s.t.aclk = aclkVlo
	return s
}

// Freeze commits the clock tree and returns the frequency handles.
func (s *SmclkDefined) Freeze() (*Mclk, *Smclk, *Aclk) {
	t := s.t.spend("clock.Freeze")
	t.commit()
	return &Mclk{freq: t.mclkFreq}, &Smclk{freq: t.mclkFreq >> t.smclkDiv}, &Aclk{freq: t.aclk.freq()}
}

func (s *SmclkDisabled) AclkRefoclk() *SmclkDisabled {
	s.t.check("clock.AclkRefoclk")
	s.t.aclk = aclkRefo
	return s
}

func (s *SmclkDisabled) AclkVloclk() *SmclkDisabled {
	s.t.check("clock.AclkVloclk")
	s.t.aclk = aclkVlo
	return s
}

// Freeze commits the clock tree with SMCLK off.
func (s *SmclkDisabled) Freeze() (*Mclk, *Aclk) {
	t := s.t.spend("clock.Freeze")
	t.commit()
	return &Mclk{freq: t.mclkFreq}, &Aclk{freq: t.aclk.freq()}
}

// commit writes CS in the order the FLL needs: DCO and FLL first, then source
// muxes, then dividers, then wait for the loop to lock.
func (t *tree) commit() {
	cs := t.cs
	if t.mclkSrc == mclkDco {
		cs.CSCTL3.Set(pac.CS_CSCTL3_SELREF_REFOCLK)
		cs.CSCTL0.Set(0)
		cs.CSCTL1.Set(uint16(t.dcoRange)<<pac.CS_CSCTL1_DCORSEL_Pos | pac.CS_CSCTL1_DISMOD)
		// fDCOCLKDIV = (FLLN+1) * fREFO with FLLD=/1
		cs.CSCTL2.Set(pac.CS_CSCTL2_FLLD_1 | (t.multiplier-1)&pac.CS_CSCTL2_FLLN_Msk)
	}

	cs.CSCTL4.Set(t.aclk.sela() | t.mclkSrc.selms())

	ctl5 := uint16(pac.CS_CSCTL5_VLOAUTOOFF) | uint16(t.mclkDiv)<<pac.CS_CSCTL5_DIVM_Pos
	if t.smclkOff {
		ctl5 |= pac.CS_CSCTL5_SMCLKOFF
	} else {
		ctl5 |= uint16(t.smclkDiv) << pac.CS_CSCTL5_DIVS_Pos
	}
	cs.CSCTL5.Set(ctl5)

	if t.mclkSrc == mclkDco {
		for cs.CSCTL7.HasBits(pac.CS_CSCTL7_FLLUNLOCK_Msk) {
		}
	}
}
