package bigint

import (
	"math/big"
	"testing"
)

func TestPowModMatchesExp(t *testing.T) {
	b := big.NewInt(5)
	e := big.NewInt(117)
	m := big.NewInt(21)
	want := new(big.Int).Exp(b, e, m)
	got := PowMod(b, e, m)
	if got.Cmp(want) != 0 {
		t.Fatalf("PowMod mismatch: want %s got %s", want, got)
	}
}

func TestPowModZeroModulusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero modulus")
		}
	}()
	PowMod(big.NewInt(2), big.NewInt(3), big.NewInt(0))
}

func TestModZeroModulusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero modulus")
		}
	}()
	Mod(big.NewInt(5), big.NewInt(0))
}

func TestPow(t *testing.T) {
	got := Pow(big.NewInt(2), big.NewInt(10))
	if got.Cmp(big.NewInt(1024)) != 0 {
		t.Fatalf("Pow(2,10) = %s, want 1024", got)
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		in, want int64
	}{
		{0, 2},
		{1, 2},
		{2, 3},
		{7, 11},
		{20, 23},
	}
	for _, tc := range tests {
		got := NextPrime(big.NewInt(tc.in))
		if got.Cmp(big.NewInt(tc.want)) != 0 {
			t.Errorf("NextPrime(%d) = %s, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNextPrimeIsPrime(t *testing.T) {
	z := big.NewInt(10000)
	p := NextPrime(z)
	if !p.ProbablyPrime(20) {
		t.Fatalf("NextPrime(%s) = %s is not prime", z, p)
	}
	if p.Cmp(z) <= 0 {
		t.Fatalf("NextPrime(%s) = %s is not strictly greater", z, p)
	}
}

func TestHexRoundTrip(t *testing.T) {
	vals := []int64{0, 1, 255, 65535, 1 << 30}
	for _, v := range vals {
		z := big.NewInt(v)
		s := HexEncode(z)
		if len(s) > 1 && s[0] == '0' {
			t.Errorf("HexEncode(%d) = %q has a leading zero", v, s)
		}
		got, err := HexDecode(s)
		if err != nil {
			t.Fatalf("HexDecode(%q) failed: %v", s, err)
		}
		if got.Cmp(z) != 0 {
			t.Errorf("round trip mismatch for %d: got %s", v, got)
		}
	}
}

func TestHexDecodeLenient(t *testing.T) {
	want := big.NewInt(0xabcdef)
	for _, s := range []string{"abcdef", "ABCDEF", "0xabcdef", "0Xabcdef"} {
		got, err := HexDecode(s)
		if err != nil {
			t.Fatalf("HexDecode(%q) failed: %v", s, err)
		}
		if got.Cmp(want) != 0 {
			t.Errorf("HexDecode(%q) = %s, want %s", s, got, want)
		}
	}
}

func TestHexDecodeInvalid(t *testing.T) {
	if _, err := HexDecode(""); err == nil {
		t.Fatal("expected error on empty string")
	}
	if _, err := HexDecode("not hex"); err == nil {
		t.Fatal("expected error on invalid hex")
	}
}
