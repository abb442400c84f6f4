// Package atom binds an element identity to a position.
package atom

import (
	"encoding/json"
	"fmt"

	"github.com/RoanBrand/AtomDashboard/element"
	"github.com/RoanBrand/AtomDashboard/log"
)

// Atom is immutable once built. Number, symbol and mass are resolved from the
// element table at construction.
type Atom struct {
	number int
	symbol string
	mass   float64
	coord  Vector
}

// New builds an atom from its atomic number. Numbers outside 0..118 give the
// sentinel symbol and a zero mass.
func New(number int, coord Vector) Atom {
	return Atom{
		number: number,
		symbol: element.Symbol(number),
		mass:   element.Mass(number),
		coord:  coord,
	}
}

// FromSymbol builds an atom from a chemical symbol. If the symbol is not in
// the table the atom is still returned, with atomic number 0, zero mass and
// the given symbol, together with an error wrapping element.ErrUnknownSymbol.
func FromSymbol(symbol string, coord Vector) (Atom, error) {
	n, err := element.Number(symbol)
	a := Atom{
		number: n,
		symbol: symbol,
		mass:   element.Mass(n),
		coord:  coord,
	}
	if err != nil {
		return a, fmt.Errorf("atom at %v: %w", coord, err)
	}
	return a, nil
}

func (a Atom) Coord() Vector { return a.coord }
func (a Atom) X() float64 { return a.coord[0] }
func (a Atom) Y() float64 { return a.coord[1] }
func (a Atom) Z() float64 { return a.coord[2] }
func (a Atom) Mass() float64 { return a.mass }
func (a Atom) Symbol() string { return a.symbol }
func (a Atom) Number() int { return a.number }

// Charge is the bare nuclear charge Z. Ionisation is not modelled.
func (a Atom) Charge() float64 { return float64(a.number) }

// Known reports whether the atom resolved to a tabulated element.
func (a Atom) Known() bool {
	return element.Valid(a.number)
}

// Translate returns a copy of a moved by d.
func (a Atom) Translate(d Vector) Atom {
	a.coord = a.coord.Add(d)
	return a
}

// String renders symbol, atomic number and mass in 3/6/10 wide columns.
func (a Atom) String() string {
	return fmt.Sprintf("%3s%6d%10.4f", a.symbol, a.number, a.mass)
}

type atomJSON struct {
	Symbol string  `json:"symbol"`
	Number int     `json:"number"`
	Mass   float64 `json:"mass"`
	Coord  Vector  `json:"coord"`
}

func (a Atom) MarshalJSON() ([]byte, error) {
	return json.Marshal(atomJSON{Symbol: a.symbol, Number: a.number, Mass: a.mass, Coord: a.coord})
}

// UnmarshalJSON resolves the element again, so a remote listing cannot carry
// a mass that disagrees with the table. Sentinel symbols and unknown symbols
// fall back to the encoded atomic number. Unknown symbols are logged.
func (a *Atom) UnmarshalJSON(b []byte) error {
	var aj atomJSON
	if err := json.Unmarshal(b, &aj); err != nil {
		return err
	}
	if aj.Symbol == "" || aj.Symbol == element.NoneSymbol {
		*a = New(aj.Number, aj.Coord)
		return nil
	}

	res, err := FromSymbol(aj.Symbol, aj.Coord)
	if err != nil {
		log.Printf("decoding atom %d: %v\n", aj.Number, err)
		if aj.Number != 0 {
			res = New(aj.Number, aj.Coord)
			res.symbol = aj.Symbol
		}
	}
	*a = res
	return nil
}
