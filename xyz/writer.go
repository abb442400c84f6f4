package xyz

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/RoanBrand/AtomDashboard/molecule"
)

// The comment must stay on line 2.
var commentReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Write is the inverse of Read.
func Write(w io.Writer, m *molecule.Molecule) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%s\n", len(m.Atoms), commentReplacer.Replace(m.Comment))
	for _, a := range m.Atoms {
		fmt.Fprintf(bw, "%-3s%15.8f%15.8f%15.8f\n", a.Symbol(), a.X(), a.Y(), a.Z())
	}
	return bw.Flush()
}
