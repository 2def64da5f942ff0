package mathx

import "testing"

func TestRoundDiv(t *testing.T) {
	cases := []struct {
		a, b, want uint32
	}{
		{0, 3, 0},
		{10, 4, 3}, // 2.5 rounds up
		{9, 4, 2},  // 2.25
		{11, 4, 3}, // 2.75
		{1_000_000, 32768, 31},
		{0xFFFFFFFF, 2, 0x80000000},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := RoundDiv(c.a, c.b); got != c.want {
			t.Fatalf("RoundDiv(%d,%d)=%d want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestAbsDiffClampBetween(t *testing.T) {
	if AbsDiff[uint32](3, 10) != 7 || AbsDiff[uint32](10, 3) != 7 {
		t.Fatal("AbsDiff")
	}
	if Clamp(9, 0, 3) != 3 || Clamp(-1, 3, 0) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatal("Clamp")
	}
	if !Between(5, 10, 1) || Between(11, 1, 10) {
		t.Fatal("Between")
	}
}
