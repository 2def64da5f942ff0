package timex

import (
	"math/bits"
	"time"
)

// Ticks returns how many cycles of a freqHz clock fit in d, rounded down and
// saturated to the 16-bit range of a timer compare register.
func Ticks(freqHz uint32, d time.Duration) uint16 {
	if d <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(d), uint64(freqHz))
	if hi >= uint64(time.Second) {
		return 0xFFFF
	}
	n, _ := bits.Div64(hi, lo, uint64(time.Second))
	if n > 0xFFFF {
		return 0xFFFF
	}
	return uint16(n)
}

// Duration is the inverse of Ticks: the time ticks cycles of a freqHz clock
// take. It accepts 32-bit counts so watchdog intervals fit.
func Duration(freqHz uint32, ticks uint32) time.Duration {
	if freqHz == 0 {
		return 0
	}
	return time.Duration(uint64(ticks) * uint64(time.Second) / uint64(freqHz))
}
