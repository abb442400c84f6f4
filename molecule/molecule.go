// Package molecule holds an ordered set of atoms read from one geometry.
package molecule

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/RoanBrand/AtomDashboard/atom"
)

type Molecule struct {
	Name      string      `json:"name"`
	Comment   string      `json:"comment,omitempty"`
	Source    string      `json:"source,omitempty"` // file or database the geometry came from
	TimeStamp time.Time   `json:"time_stamp"`
	Atoms     []atom.Atom `json:"atoms"`
}

func (m *Molecule) TotalMass() float64 {
	total := 0.0
	for _, a := range m.Atoms {
		total += a.Mass()
	}
	return total
}

func (m *Molecule) TotalCharge() float64 {
	total := 0.0
	for _, a := range m.Atoms {
		total += a.Charge()
	}
	return total
}

// CenterOfMass is the zero vector when the molecule has no mass.
func (m *Molecule) CenterOfMass() atom.Vector {
	var c atom.Vector
	total := m.TotalMass()
	if total == 0 {
		return c
	}
	for _, a := range m.Atoms {
		c = c.Add(a.Coord().Scale(a.Mass()))
	}
	return c.Scale(1 / total)
}

// Unknown returns the indices of atoms that did not resolve to an element.
func (m *Molecule) Unknown() []int {
	var idx []int
	for i, a := range m.Atoms {
		if a.Number() == 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// Formula in Hill order: C first, then H, then the rest alphabetically. With
// no carbon everything is alphabetical.
func (m *Molecule) Formula() string {
	counts := make(map[string]int)
	for _, a := range m.Atoms {
		counts[a.Symbol()]++
	}

	syms := make([]string, 0, len(counts))
	for s := range counts {
		syms = append(syms, s)
	}
	_, hasC := counts["C"]
	rank := func(s string) int {
		if !hasC {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.Slice(syms, func(i, j int) bool {
		ri, rj := rank(syms[i]), rank(syms[j])
		if ri != rj {
			return ri < rj
		}
		return syms[i] < syms[j]
	})

	f := strings.Builder{}
	for _, s := range syms {
		f.WriteString(s)
		if counts[s] > 1 {
			f.WriteString(strconv.Itoa(counts[s]))
		}
	}
	return f.String()
}

// WriteListing writes the molecule name, one fixed-width line per atom and a
// closing total mass line.
func (m *Molecule) WriteListing(w io.Writer) error {
	if _, err := fmt.Fprintln(w, m.Name); err != nil {
		return err
	}
	for _, a := range m.Atoms {
		if _, err := fmt.Fprintln(w, a.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%9s%10.4f\n", "Total", m.TotalMass())
	return err
}
