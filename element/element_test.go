package element

import (
	"errors"
	"math"
	"testing"
)

func TestTableRoundTrip(t *testing.T) {
	for n := 0; n <= MaxNumber; n++ {
		if Symbol(n) != table[n].symbol {
			t.Fatalf("Symbol(%d) = %q, table has %q", n, Symbol(n), table[n].symbol)
		}
		if Mass(n) != table[n].mass {
			t.Fatalf("Mass(%d) = %v, table has %v", n, Mass(n), table[n].mass)
		}

		s := Symbol(n)
		if s == NoneSymbol {
			continue
		}
		got, err := Number(s)
		if err != nil {
			t.Fatalf("Number(%q): %v", s, err)
		}
		if got != n {
			t.Errorf("Number(Symbol(%d)) = %d", n, got)
		}
	}
}

func TestSymbolsUnique(t *testing.T) {
	seen := make(map[string]int)
	for n := 1; n <= MaxNumber; n++ {
		s := table[n].symbol
		if s == NoneSymbol {
			if table[n].mass != 0 {
				t.Errorf("sentinel at %d has mass %v", n, table[n].mass)
			}
			continue
		}
		if prev, ok := seen[s]; ok {
			t.Errorf("symbol %q at %d and %d", s, prev, n)
		}
		seen[s] = n
	}
	if table[0].symbol != NoneSymbol || table[0].mass != 0 {
		t.Errorf("index 0 = %+v, want sentinel", table[0])
	}
}

func TestOutOfRange(t *testing.T) {
	for _, n := range []int{-1, -118, 119, 120, 1000} {
		if s := Symbol(n); s != NoneSymbol {
			t.Errorf("Symbol(%d) = %q", n, s)
		}
		if m := Mass(n); m != 0 {
			t.Errorf("Mass(%d) = %v", n, m)
		}
		if Valid(n) {
			t.Errorf("Valid(%d) = true", n)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		symbol string
		want   int
		err    bool
	}{
		{"H", 1, false},
		{"C", 6, false},
		{"O", 8, false},
		{"Rg", 111, false},
		{NoneSymbol, 0, false},
		{"Zz", 0, true},
		{"c", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := Number(tt.symbol)
		if got != tt.want {
			t.Errorf("Number(%q) = %d, want %d", tt.symbol, got, tt.want)
		}
		if tt.err != (err != nil) {
			t.Errorf("Number(%q) error = %v", tt.symbol, err)
		}
		if err != nil && !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("Number(%q) error %v is not ErrUnknownSymbol", tt.symbol, err)
		}
	}
}

func TestMasses(t *testing.T) {
	tests := map[int]float64{1: 1.008, 6: 12.011, 8: 15.9994, 26: 55.845, 79: 196.97, 92: 238.03}
	for n, want := range tests {
		if got := Mass(n); math.Abs(got-want) > 0.0005 {
			t.Errorf("Mass(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want int
		err  bool
	}{
		{"C", 6, false},
		{" cl ", 17, false},
		{"FE", 26, false},
		{"8", 8, false},
		{"0", 0, true},
		{"119", 0, true},
		{"Xx", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSymbol(tt.in)
		if got != tt.want || tt.err != (err != nil) {
			t.Errorf("ParseSymbol(%q) = %d, %v", tt.in, got, err)
		}
	}
}

func TestAll(t *testing.T) {
	els := All()
	if len(els) != Count {
		t.Fatalf("len(All()) = %d", len(els))
	}
	els[6].Symbol = "X"
	if Symbol(6) != "C" {
		t.Fatal("All exposed the table")
	}
	if el := Lookup(6); el.Symbol != "C" || el.Number != 6 {
		t.Errorf("Lookup(6) = %+v", el)
	}
	if el := Lookup(200); el.Symbol != NoneSymbol || el.Mass != 0 || el.Number != 200 {
		t.Errorf("Lookup(200) = %+v", el)
	}
}
