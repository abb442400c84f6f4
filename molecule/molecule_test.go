package molecule

import (
	"math"
	"strings"
	"testing"

	"github.com/RoanBrand/AtomDashboard/atom"
)

func water() *Molecule {
	o, _ := atom.FromSymbol("O", atom.VectorOf(0, 0, 0))
	return &Molecule{
		Name: "water",
		Atoms: []atom.Atom{
			o,
			atom.New(1, atom.VectorOf(0.757, 0.586, 0)),
			atom.New(1, atom.VectorOf(-0.757, 0.586, 0)),
		},
	}
}

func TestTotals(t *testing.T) {
	m := water()
	if got := m.TotalMass(); math.Abs(got-18.0154) > 0.0005 {
		t.Errorf("total mass %v", got)
	}
	if got := m.TotalCharge(); got != 10 {
		t.Errorf("total charge %v", got)
	}
}

func TestCenterOfMass(t *testing.T) {
	c := water().CenterOfMass()
	if math.Abs(c.X()) > 1e-9 {
		t.Errorf("x %v, want 0", c.X())
	}
	want := 2 * 1.008 * 0.586 / 18.0154
	if math.Abs(c.Y()-want) > 1e-4 {
		t.Errorf("y %v, want %v", c.Y(), want)
	}

	empty := &Molecule{}
	if empty.CenterOfMass() != (atom.Vector{}) {
		t.Error("empty molecule has a center of mass")
	}
}

func TestFormula(t *testing.T) {
	if f := water().Formula(); f != "H2O" {
		t.Errorf("water formula %q", f)
	}

	ethanol := &Molecule{}
	for _, z := range []int{6, 6, 8, 1, 1, 1, 1, 1, 1} {
		ethanol.Atoms = append(ethanol.Atoms, atom.New(z, atom.Vector{}))
	}
	if f := ethanol.Formula(); f != "C2H6O" {
		t.Errorf("ethanol formula %q", f)
	}
}

func TestUnknown(t *testing.T) {
	m := water()
	bad, err := atom.FromSymbol("Qq", atom.Vector{})
	if err == nil {
		t.Fatal("expected error for Qq")
	}
	m.Atoms = append(m.Atoms, bad)
	idx := m.Unknown()
	if len(idx) != 1 || idx[0] != 3 {
		t.Errorf("unknown indices %v", idx)
	}
}

func TestWriteListing(t *testing.T) {
	var sb strings.Builder
	if err := water().WriteListing(&sb); err != nil {
		t.Fatal(err)
	}
	want := "water\n" +
		"  O     8   15.9994\n" +
		"  H     1    1.0080\n" +
		"  H     1    1.0080\n" +
		"    Total   18.0154\n"
	if sb.String() != want {
		t.Errorf("listing:\n%s\nwant:\n%s", sb.String(), want)
	}
}
