package serial

import "msp430hal/pac"

// Baud holds the eUSCI_A baud generator fields for one clock/bit rate pair.
type Baud struct {
	BR     uint16 // UCBRx prescaler
	BRF    uint8  // first modulation stage, oversampling only
	BRS    uint8  // second modulation stage
	Over16 bool   // UCOS16
}

// CalcBaud computes the baud generator settings for bps from a clkHz source.
// Ratios of 16 and above use 16x oversampling.
func CalcBaud(clkHz, bps uint32) (Baud, error) {
	if bps == 0 {
		return Baud{}, ErrBpsTooLow
	}
	n := clkHz / bps
	if n == 0 {
		return Baud{}, ErrBpsTooHigh
	}
	if n > 0xFFFF {
		return Baud{}, ErrBpsTooLow
	}

	b := Baud{BRS: lookupBRS(clkHz, bps)}
	if n >= 16 {
		div := bps * 16
		b.Over16 = true
		b.BR = uint16(clkHz / div)
		b.BRF = uint8(clkHz % div / bps)
	} else {
		b.BR = uint16(n)
	}
	return b, nil
}

// MCTLW returns the UCAxMCTLW value for b.
func (b Baud) MCTLW() uint16 {
	v := uint16(b.BRS) << pac.E_USCI_A_UCAMCTLW_UCBRS_Pos
	if b.Over16 {
		v |= uint16(b.BRF)<<pac.E_USCI_A_UCAMCTLW_UCBRF_Pos&pac.E_USCI_A_UCAMCTLW_UCBRF_Msk |
			pac.E_USCI_A_UCAMCTLW_UCOS16
	}
	return v
}

// brsTable maps the fractional part of clk/bps to UCBRS. Row {num, den, brs}
// matches when frac*num < den; the first match wins.
var brsTable = [...]struct {
	num, den uint64
	brs      uint8
}{
	{19, 1, 0x00},
	{14, 1, 0x01},
	{12, 1, 0x02},
	{10, 1, 0x04},
	{8, 1, 0x08},
	{7, 1, 0x10},
	{6, 1, 0x20},
	{5, 1, 0x11},
	{4, 1, 0x22},
	{3, 1, 0x44},
	{11, 4, 0x49},
	{5, 2, 0x4A},
	{7, 3, 0x92},
	{2, 1, 0x53},
	{7, 4, 0xAA},
	{13, 8, 0x6B},
	{3, 2, 0xAD},
	{11, 8, 0xD6},
	{4, 3, 0xBB},
	{5, 4, 0xDD},
	{9, 8, 0xEF},
}

func lookupBRS(clkHz, bps uint32) uint8 {
	mod := uint64(clkHz % bps)
	for _, r := range brsTable {
		if mod*r.num < uint64(bps)*r.den {
			return r.brs
		}
	}
	return 0xFD
}
