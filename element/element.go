// Package element is a read-only periodic table: atomic number, symbol and
// standard atomic mass for elements 1 to 118.
package element

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxNumber is the highest atomic number in the table.
	MaxNumber = 118
	// Count is the number of table entries, including the sentinel at 0.
	Count = MaxNumber + 1

	// NoneSymbol marks an index with no known element.
	NoneSymbol = "--"
)

var ErrUnknownSymbol = errors.New("unknown element symbol")

type entry struct {
	symbol string
	mass   float64
}

// Element is a copy of one table entry.
type Element struct {
	Number int     `json:"number"`
	Symbol string  `json:"symbol"`
	Mass   float64 `json:"mass"`
}

// Symbol to atomic number. First occurrence wins, so the sentinel maps to 0.
var numbers = func() map[string]int {
	m := make(map[string]int, Count)
	for i := range table {
		if _, ok := m[table[i].symbol]; !ok {
			m[table[i].symbol] = i
		}
	}
	return m
}()

func inRange(n int) bool {
	return n >= 0 && n <= MaxNumber
}

// Symbol returns the chemical symbol for atomic number n, or NoneSymbol if n
// is outside 0..118.
func Symbol(n int) string {
	if !inRange(n) {
		return NoneSymbol
	}
	return table[n].symbol
}

// Mass returns the standard atomic mass for atomic number n, or 0 if n is
// outside 0..118.
func Mass(n int) float64 {
	if !inRange(n) {
		return 0
	}
	return table[n].mass
}

// Number returns the atomic number for symbol s. The match is exact and case
// sensitive. An unknown symbol yields 0 and an error wrapping ErrUnknownSymbol.
func Number(s string) (int, error) {
	if n, ok := numbers[s]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
}

// Valid reports whether n names a tabulated element.
func Valid(n int) bool {
	return n > 0 && n <= MaxNumber && table[n].symbol != NoneSymbol
}

// Lookup returns the entry for n. Out of range numbers give the sentinel
// entry carrying n.
func Lookup(n int) Element {
	return Element{Number: n, Symbol: Symbol(n), Mass: Mass(n)}
}

// All returns a copy of the whole table, index 0 included.
func All() []Element {
	els := make([]Element, Count)
	for i := range table {
		els[i] = Element{Number: i, Symbol: table[i].symbol, Mass: table[i].mass}
	}
	return els
}

// ParseSymbol is the lenient form of Number used for external input. It
// trims space, fixes capitalisation ("CL" -> "Cl") and accepts a bare
// atomic number such as "6".
func ParseSymbol(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if !Valid(n) {
			return 0, fmt.Errorf("%w: atomic number %d", ErrUnknownSymbol, n)
		}
		return n, nil
	}
	if s == "" || s == NoneSymbol {
		return Number(s)
	}
	return Number(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
}
