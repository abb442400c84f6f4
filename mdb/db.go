package mdb

import (
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	"github.com/RoanBrand/AtomDashboard/atom"
	"github.com/RoanBrand/AtomDashboard/log"
	"github.com/RoanBrand/AtomDashboard/molecule"
	_ "github.com/mattn/go-adodb"
)

// Driver has problems with multiple connections.
// DB is a file on disk anyway.
var querySerializer sync.Mutex

func moleculeQuery(numResults int) string {
	return `
		SELECT TOP ` + strconv.Itoa(numResults) + `
		MoleculeID, Name, Comment, StoreDateTime
		FROM MoleculeTbl
		ORDER BY MoleculeID DESC;`
}

func atomQuery(moleculeID int64) string {
	return `
		SELECT Symbol, X, Y, Z
		FROM AtomTbl
		WHERE MoleculeID = ` + strconv.FormatInt(moleculeID, 10) + `
		ORDER BY Seq;`
}

// GetResults reads the latest numResults molecules from an Access geometry
// database, newest first.
func GetResults(dsn string, numResults int) ([]*molecule.Molecule, error) {
	querySerializer.Lock()
	defer querySerializer.Unlock()

	db, err := sql.Open("adodb", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening db: %w", err)
	}
	defer db.Close()

	molRows, err := db.Query(moleculeQuery(numResults))
	if err != nil {
		return nil, fmt.Errorf("error querying 'MoleculeTbl': %w", err)
	}
	defer molRows.Close()

	mols := make([]*molecule.Molecule, 0, numResults)
	ids := make([]int64, 0, numResults)

	for molRows.Next() {
		var id int64
		var name, comment sql.NullString
		m := &molecule.Molecule{Source: dsn}

		if err := molRows.Scan(&id, &name, &comment, &m.TimeStamp); err != nil {
			return nil, fmt.Errorf("error scanning row from 'MoleculeTbl': %w", err)
		}
		if name.Valid {
			m.Name = name.String
		}
		if comment.Valid {
			m.Comment = comment.String
		}

		mols = append(mols, m)
		ids = append(ids, id)
	}
	if err := molRows.Err(); err != nil {
		return nil, fmt.Errorf("error reading 'MoleculeTbl': %w", err)
	}

	for i, m := range mols {
		if err := readAtoms(db, ids[i], m); err != nil {
			return nil, err
		}
	}

	return mols, nil
}

func readAtoms(db *sql.DB, moleculeID int64, m *molecule.Molecule) error {
	atomRows, err := db.Query(atomQuery(moleculeID))
	if err != nil {
		return fmt.Errorf("error querying 'AtomTbl': %w", err)
	}
	defer atomRows.Close()

	for atomRows.Next() {
		var symbol sql.NullString
		var c atom.Vector

		if err := atomRows.Scan(&symbol, &c[0], &c[1], &c[2]); err != nil {
			return fmt.Errorf("error scanning row from 'AtomTbl': %w", err)
		}

		m.Atoms = append(m.Atoms, atomFromRow(moleculeID, m.Name, symbol, c))
	}

	return atomRows.Err()
}

// atomFromRow logs rows whose symbol is NULL or unknown and keeps them as
// atomic number 0.
func atomFromRow(moleculeID int64, name string, symbol sql.NullString, c atom.Vector) atom.Atom {
	if !symbol.Valid {
		log.Printf("molecule %d (%s): atom with NULL symbol\n", moleculeID, name)
		return atom.New(0, c)
	}

	a, err := atom.FromSymbol(symbol.String, c)
	if err != nil {
		log.Printf("molecule %d (%s): %v\n", moleculeID, name, err)
	}
	return a
}
