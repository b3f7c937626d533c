package util

import "testing"

func TestShortenAddress(t *testing.T) {
	got := ShortenAddress("0xdac17f958d2ee523a2206206994597c13d831ec7")
	if got != "0xdac1...1ec7" {
		t.Fatalf("unexpected short form %q", got)
	}
	if ShortenAddress("0xabc") != "0xabc" {
		t.Fatal("short input must pass through")
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2_500_000_000, "$2.50B"},
		{3_200_000, "$3.20M"},
		{45_600, "$45.6K"},
		{12.5, "$12.50"},
		{0.00000123, "$0.00000123"},
		{0, "$0"},
	}
	for _, c := range cases {
		if got := FormatUSD(c.in); got != c.want {
			t.Errorf("FormatUSD(%f) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(42.25); got != "42.2%" && got != "42.3%" {
		t.Fatalf("unexpected percent %q", got)
	}
}
