package mdb

import (
	"bytes"
	"database/sql"
	"os"
	"strings"
	"testing"

	"github.com/RoanBrand/AtomDashboard/atom"
	"github.com/RoanBrand/AtomDashboard/element"
	"github.com/RoanBrand/AtomDashboard/log"
)

func TestQueries(t *testing.T) {
	q := moleculeQuery(20)
	if !strings.Contains(q, "SELECT TOP 20") || !strings.Contains(q, "ORDER BY MoleculeID DESC") {
		t.Errorf("molecule query:\n%s", q)
	}

	q = atomQuery(1234)
	if !strings.Contains(q, "WHERE MoleculeID = 1234") || !strings.Contains(q, "ORDER BY Seq") {
		t.Errorf("atom query:\n%s", q)
	}
}

func TestAtomFromRow(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	c := atom.VectorOf(1, 2, 3)

	a := atomFromRow(7, "benzene", sql.NullString{String: "C", Valid: true}, c)
	if a.Number() != 6 || a.Coord() != c {
		t.Errorf("carbon row gave %v at %v", a, a.Coord())
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}

	a = atomFromRow(7, "benzene", sql.NullString{String: "Zz", Valid: true}, c)
	if a.Number() != 0 || a.Symbol() != "Zz" || a.Mass() != 0 {
		t.Errorf("unknown row gave %v", a)
	}
	if !strings.Contains(buf.String(), "molecule 7 (benzene)") || !strings.Contains(buf.String(), "Zz") {
		t.Errorf("unknown symbol not logged: %q", buf.String())
	}

	buf.Reset()
	a = atomFromRow(8, "water", sql.NullString{}, c)
	if a.Number() != 0 || a.Symbol() != element.NoneSymbol {
		t.Errorf("NULL row gave %v", a)
	}
	if !strings.Contains(buf.String(), "NULL symbol") {
		t.Errorf("NULL symbol not logged: %q", buf.String())
	}
}
