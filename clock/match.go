package clock

import "msp430hal/x/mathx"

// DcoRange is the DCORSEL bucket programmed into CSCTL1 for a DCO frequency.
type DcoRange uint8

// Upper bounds (exclusive) of DCO ranges 0..6; anything above is range 7.
var dcoRangeLimits = [...]uint32{
	RefoHz * 32,
	RefoHz * 64,
	RefoHz * 128,
	RefoHz * 256,
	RefoHz * 384,
	RefoHz * 512,
	RefoHz * 640,
}

// DcoRangeFor returns the DCO range bucket for hz.
func DcoRangeFor(hz uint32) DcoRange {
	for i, lim := range dcoRangeLimits {
		if hz < lim {
			return DcoRange(i)
		}
	}
	return DcoRange(len(dcoRangeLimits))
}

// MatchDivider finds the power-of-two divider d in [0, maxDivExp] whose output
// src>>d is closest to hz. On a tie the larger divider wins. hz must lie in
// [src>>maxDivExp, src].
func MatchDivider(hz, src uint32, maxDivExp uint8) (freq uint32, div uint8, err error) {
	if hz > src {
		return 0, 0, ErrTooHigh
	}
	if hz < src>>maxDivExp {
		return 0, 0, ErrTooLow
	}
	freq, div = nearestDivider(hz, src, maxDivExp)
	return freq, div, nil
}

// nearestDivider is MatchDivider without range checks: out of range targets
// clamp to the nearest end.
func nearestDivider(hz, src uint32, maxDivExp uint8) (uint32, uint8) {
	best := uint8(0)
	bestDiff := mathx.AbsDiff(hz, src)
	for d := uint8(1); d <= maxDivExp; d++ {
		if diff := mathx.AbsDiff(hz, src>>d); diff <= bestDiff {
			best, bestDiff = d, diff
		}
	}
	return src >> best, best
}

// MatchDco picks the FLL multiplier for a DCO target: round(hz/RefoHz), halves
// rounding up. The resolved frequency is multiplier*RefoHz.
func MatchDco(hz uint32) (freq uint32, multiplier uint16, rng DcoRange, err error) {
	if hz < RefoHz {
		return 0, 0, 0, ErrTooLow
	}
	if hz > DcoMaxHz {
		return 0, 0, 0, ErrTooHigh
	}
	m := mathx.Clamp(mathx.RoundDiv(hz, RefoHz), 1, MaxDcoMultiplier)
	freq = m * RefoHz
	return freq, uint16(m), DcoRangeFor(freq), nil
}
