//go:build !tinygo && !baremetal

package main

import (
	"time"

	"gopkg.in/yaml.v3"

	"msp430hal/clock"
	"msp430hal/errcode"
	"msp430hal/pac"
	"msp430hal/serial"
	"msp430hal/timer"
	"msp430hal/watchdog"
	"msp430hal/x/mathx"
)

// Plan is a board configuration in the shape firmware would build it.
type Plan struct {
	Clocks   ClockPlan     `yaml:"clocks"`
	Serial   *SerialPlan   `yaml:"serial"`
	Timer    *TimerPlan    `yaml:"timer"`
	Watchdog *WatchdogPlan `yaml:"watchdog"`
}

type ClockPlan struct {
	Mclk struct {
		Source string `yaml:"source"` // refo | vlo | dco
		Hz     uint32 `yaml:"hz"`
	} `yaml:"mclk"`
	Smclk struct {
		Hz  uint32 `yaml:"hz"`
		Div uint8  `yaml:"div"`
		Off bool   `yaml:"off"`
	} `yaml:"smclk"`
	Aclk string `yaml:"aclk"` // refo | vlo
}

type SerialPlan struct {
	Bps      uint32 `yaml:"bps"`
	Clock    string `yaml:"clock"` // aclk | smclk | uclk
	UclkHz   uint32 `yaml:"uclk_hz"`
	Parity   string `yaml:"parity"` // none | even | odd
	StopBits int    `yaml:"stop_bits"`
	Bits     int    `yaml:"bits"`
	MsbFirst bool   `yaml:"msb_first"`
}

type TimerPlan struct {
	Clock  string        `yaml:"clock"` // aclk | smclk | inclk | tbclk
	Div    uint8         `yaml:"div"`
	DivEx  uint8         `yaml:"div_ex"`
	Mode   string        `yaml:"mode"` // periodic | pwm
	Period time.Duration `yaml:"period"`
	Ticks  uint16        `yaml:"ticks"`
	Duty   [2]uint16     `yaml:"duty"`
}

type WatchdogPlan struct {
	Clock    string `yaml:"clock"` // vlo | aclk | smclk
	Period   string `yaml:"period"`
	Interval bool   `yaml:"interval"`
}

// Result is what applying a plan produced.
type Result struct {
	Mclk    *clock.Mclk
	Smclk   *clock.Smclk // nil when off
	Aclk    *clock.Aclk
	Baud    *serial.Baud
	TickHz  uint32
	Timeout time.Duration
}

func LoadPlan(raw []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func bad(op, msg string) error {
	return &errcode.E{C: errcode.Unsupported, Op: op, Msg: msg}
}

// Apply resets the simulated registers and runs p through the HAL.
func Apply(p *Plan) (*Result, error) {
	pac.Reset()
	periph, err := pac.Take()
	if err != nil {
		return nil, err
	}

	var res Result
	mclk, smclk, aclk, err := applyClocks(&p.Clocks, periph.CS)
	if err != nil {
		return nil, err
	}
	res.Mclk, res.Smclk, res.Aclk = mclk, smclk, aclk

	if p.Serial != nil {
		b, err := applySerial(p.Serial, periph.E_USCI_A1, smclk, aclk)
		if err != nil {
			return nil, err
		}
		res.Baud = b
	}
	if p.Timer != nil {
		hz, err := applyTimer(p.Timer, periph.TB0, smclk, aclk)
		if err != nil {
			return nil, err
		}
		res.TickHz = hz
	}
	if p.Watchdog != nil {
		d, err := applyWatchdog(p.Watchdog, periph.WDT_A, periph.SFR, smclk, aclk)
		if err != nil {
			return nil, err
		}
		res.Timeout = d
	}
	return &res, nil
}

func applyClocks(c *ClockPlan, cs *pac.CS_Type) (*clock.Mclk, *clock.Smclk, *clock.Aclk, error) {
	cfg := clock.Constrain(cs)
	switch c.Aclk {
	case "", "refo":
	case "vlo":
		cfg = cfg.AclkVloclk()
	default:
		return nil, nil, nil, bad("clocks.aclk", c.Aclk)
	}

	var (
		m   *clock.MclkDefined
		err error
	)
	switch c.Mclk.Source {
	case "":
		m = cfg.MclkDefault()
	case "refo":
		m, err = cfg.MclkRefoclk(c.Mclk.Hz)
	case "vlo":
		m, err = cfg.MclkVloclk(c.Mclk.Hz)
	case "dco":
		m, err = cfg.MclkDcoclk(c.Mclk.Hz)
	default:
		return nil, nil, nil, bad("clocks.mclk", c.Mclk.Source)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	if c.Smclk.Off {
		mclk, aclk := m.SmclkOff().Freeze()
		return mclk, nil, aclk, nil
	}
	var s *clock.SmclkDefined
	switch {
	case c.Smclk.Hz != 0:
		s = m.SmclkOn(c.Smclk.Hz)
	case c.Smclk.Div != 0:
		d, ok := smclkDivs[c.Smclk.Div]
		if !ok {
			return nil, nil, nil, bad("clocks.smclk.div", "want 1, 2, 4 or 8")
		}
		s = m.SmclkDivide(d)
	default:
		s = m.SmclkDefault()
	}
	mclk, smclk, aclk := s.Freeze()
	return mclk, smclk, aclk, nil
}

var smclkDivs = map[uint8]clock.SmclkDiv{
	1: clock.SmclkDiv1,
	2: clock.SmclkDiv2,
	4: clock.SmclkDiv4,
	8: clock.SmclkDiv8,
}

func applySerial(s *SerialPlan, uca *pac.E_USCI_A_Type, smclk *clock.Smclk, aclk *clock.Aclk) (*serial.Baud, error) {
	cfg := serial.Constrain(uca)
	if s.MsbFirst {
		cfg = cfg.MsbFirst()
	}
	switch s.Bits {
	case 0, 8:
	case 7:
		cfg = cfg.Char7Bits()
	default:
		return nil, bad("serial.bits", "want 7 or 8")
	}
	switch s.StopBits {
	case 0, 1:
	case 2:
		cfg = cfg.StopBits2()
	default:
		return nil, bad("serial.stop_bits", "want 1 or 2")
	}
	switch s.Parity {
	case "", "none":
	case "even":
		cfg = cfg.ParityEven()
	case "odd":
		cfg = cfg.ParityOdd()
	default:
		return nil, bad("serial.parity", s.Parity)
	}

	var (
		bc  *serial.BaudConfig
		err error
	)
	switch s.Clock {
	case "", "aclk":
		bc, err = cfg.BaudrateAclk(s.Bps, aclk)
	case "smclk":
		if smclk == nil {
			return nil, bad("serial.clock", "smclk is off")
		}
		bc, err = cfg.BaudrateSmclk(s.Bps, smclk)
	case "uclk":
		bc, err = cfg.BaudrateUclk(s.Bps, s.UclkHz)
	default:
		return nil, bad("serial.clock", s.Clock)
	}
	if err != nil {
		return nil, err
	}
	bc.Freeze()
	b := bc.Baud
	return &b, nil
}

var timerDivs = map[uint8]timer.Div{
	1: timer.Div1,
	2: timer.Div2,
	4: timer.Div4,
	8: timer.Div8,
}

func applyTimer(t *TimerPlan, tb *pac.TB0_Type, smclk *clock.Smclk, aclk *clock.Aclk) (uint32, error) {
	cfg := timer.Constrain(tb)
	switch t.Clock {
	case "", "aclk":
		cfg = cfg.UseAclk(aclk)
	case "smclk":
		if smclk == nil {
			return 0, bad("timer.clock", "smclk is off")
		}
		cfg = cfg.UseSmclk(smclk)
	case "inclk":
		cfg = cfg.UseInclk()
	case "tbclk":
		cfg = cfg.UseTbclk()
	default:
		return 0, bad("timer.clock", t.Clock)
	}
	if t.Div != 0 {
		d, ok := timerDivs[t.Div]
		if !ok {
			return 0, bad("timer.div", "want 1, 2, 4 or 8")
		}
		cfg = cfg.SetDiv(d)
	}
	if t.DivEx != 0 {
		if !mathx.Between(t.DivEx, 1, 8) {
			return 0, bad("timer.div_ex", "want 1..8")
		}
		cfg = cfg.SetDivEx(timer.DivEx(t.DivEx - 1))
	}
	hz := cfg.TickHz()

	switch t.Mode {
	case "", "periodic":
		parts := cfg.ToPeriodic()
		switch {
		case t.Period != 0:
			parts.Timer.StartAfter(t.Period)
		case t.Ticks != 0:
			parts.Timer.Start(t.Ticks)
		}
	case "pwm":
		pwms := cfg.ToPwm()
		pwms.SetPeriod(t.Ticks)
		pwms.Pwm1.SetDuty(t.Duty[0])
		pwms.Pwm2.SetDuty(t.Duty[1])
		pwms.Enable()
	default:
		return 0, bad("timer.mode", t.Mode)
	}
	return hz, nil
}

var wdtPeriods = map[string]watchdog.Periods{
	"2G":    watchdog.Periods2G,
	"128M":  watchdog.Periods128M,
	"8192K": watchdog.Periods8192K,
	"512K":  watchdog.Periods512K,
	"32K":   watchdog.Periods32K,
	"8192":  watchdog.Periods8192,
	"512":   watchdog.Periods512,
	"64":    watchdog.Periods64,
}

func applyWatchdog(w *WatchdogPlan, wdt *pac.WDT_A_Type, sfr *pac.SFR_Type, smclk *clock.Smclk, aclk *clock.Aclk) (time.Duration, error) {
	p, ok := wdtPeriods[w.Period]
	if !ok {
		return 0, bad("watchdog.period", w.Period)
	}
	dog := watchdog.Constrain(wdt, sfr)
	switch w.Clock {
	case "", "vlo":
		dog.SetVloclk()
	case "aclk":
		dog.SetAclk(aclk)
	case "smclk":
		if smclk == nil {
			return 0, bad("watchdog.clock", "smclk is off")
		}
		dog.SetSmclk(smclk)
	default:
		return 0, bad("watchdog.clock", w.Clock)
	}
	if w.Interval {
		iv := dog.ToInterval()
		iv.Start(p)
		return iv.Timeout(p), nil
	}
	dog.Start(p)
	return dog.Timeout(p), nil
}
