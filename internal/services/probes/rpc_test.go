package probes

import (
	"math/big"
	"testing"
)

func TestDecodeABIUint(t *testing.T) {
	n, err := decodeABIUint("0x00000000000000000000000000000000000000000000d3c21bcecceda1000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := new(big.Int).SetString("1000000000000000000000000", 10)
	if n.Cmp(want) != 0 {
		t.Fatalf("expected %s, got %s", want, n)
	}
}

func TestDecodeABIAddress(t *testing.T) {
	got, err := decodeABIAddress("0x000000000000000000000000dac17f958d2ee523a2206206994597c13d831ec7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0xdac17f958d2ee523a2206206994597c13d831ec7" {
		t.Fatalf("unexpected address %s", got)
	}
}

func TestDecodeABIStringDynamic(t *testing.T) {
	// offset 0x20, length 10, "Tether USD"
	raw := "0x" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"000000000000000000000000000000000000000000000000000000000000000a" +
		"5465746865722055534400000000000000000000000000000000000000000000"
	got, err := decodeABIString(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Tether USD" {
		t.Fatalf("expected Tether USD, got %q", got)
	}
}

func TestDecodeABIStringBytes32(t *testing.T) {
	// MKR-style bytes32 symbol
	raw := "0x4d4b520000000000000000000000000000000000000000000000000000000000"
	got, err := decodeABIString(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "MKR" {
		t.Fatalf("expected MKR, got %q", got)
	}
}

func TestPadAddress(t *testing.T) {
	got := padAddress("0xDAC17F958D2ee523a2206206994597C13D831ec7")
	want := "000000000000000000000000dac17f958d2ee523a2206206994597c13d831ec7"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestTokensFromRaw(t *testing.T) {
	raw := new(big.Int).Mul(big.NewInt(5), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	if got := tokensFromRaw(raw, 18); got != 5 {
		t.Fatalf("expected 5 tokens, got %f", got)
	}
	if got := tokensFromRaw(nil, 18); got != 0 {
		t.Fatalf("nil raw must be zero, got %f", got)
	}
}
