// Package xyz reads and writes molecular geometries in the XYZ format:
//
//	<number of atoms>
//	<comment>
//	<symbol or Z> <x> <y> <z>
//	...
package xyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/RoanBrand/AtomDashboard/atom"
	"github.com/RoanBrand/AtomDashboard/element"
	"github.com/RoanBrand/AtomDashboard/log"
	"github.com/RoanBrand/AtomDashboard/molecule"
)

const maxAtomHint = 1 << 16

// Read parses one geometry. Atoms with unknown symbols are kept with atomic
// number 0 and reported to the log.
func Read(r io.Reader) (*molecule.Molecule, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("empty xyz input")
	}
	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("invalid atom count %q", sc.Text())
	}

	// header count is untrusted, cap the preallocation
	hint := count
	if hint > maxAtomHint {
		hint = maxAtomHint
	}
	m := &molecule.Molecule{Atoms: make([]atom.Atom, 0, hint)}
	if sc.Scan() {
		m.Comment = strings.TrimSpace(sc.Text())
	}

	line := 2
	for len(m.Atoms) < count && sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("line %d: expected symbol and 3 coordinates, got %q", line, sc.Text())
		}

		var coord atom.Vector
		for k := 0; k < 3; k++ {
			coord[k], err = strconv.ParseFloat(fields[k+1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad coordinate %q: %w", line, fields[k+1], err)
			}
		}

		n, err := element.ParseSymbol(fields[0])
		if err != nil {
			log.Printf("xyz line %d: %v\n", line, err)
			a, _ := atom.FromSymbol(fields[0], coord)
			m.Atoms = append(m.Atoms, a)
			continue
		}
		m.Atoms = append(m.Atoms, atom.New(n, coord))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(m.Atoms) != count {
		return nil, fmt.Errorf("expected %d atoms, found %d", count, len(m.Atoms))
	}
	return m, nil
}

func ReadFile(path string) (*molecule.Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m.Source = path
	m.TimeStamp = fi.ModTime()
	return m, nil
}

// GetResults returns the newest numResults geometries in xyzFolder, newest first.
func GetResults(xyzFolder string, numResults int) ([]*molecule.Molecule, error) {
	files, err := filepath.Glob(filepath.Join(xyzFolder, "*.xyz"))
	if err != nil {
		return nil, err
	}

	type file struct {
		path string
		fi   os.FileInfo
	}
	xyzFiles := make([]file, 0, len(files))
	for _, f := range files {
		fi, err := os.Stat(f)
		if err != nil || fi.IsDir() {
			continue
		}
		xyzFiles = append(xyzFiles, file{f, fi})
	}

	sort.Slice(xyzFiles, func(i, j int) bool {
		return xyzFiles[i].fi.ModTime().After(xyzFiles[j].fi.ModTime())
	})

	if len(xyzFiles) < numResults {
		numResults = len(xyzFiles)
	}

	mols := make([]*molecule.Molecule, 0, numResults)
	for _, f := range xyzFiles[:numResults] {
		m, err := ReadFile(f.path)
		if err != nil {
			return nil, err
		}
		mols = append(mols, m)
	}

	return mols, nil
}
