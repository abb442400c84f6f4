package remotedb

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RoanBrand/AtomDashboard/config"
	"github.com/RoanBrand/AtomDashboard/log"
	"github.com/RoanBrand/AtomDashboard/molecule"
	_ "github.com/denisenkom/go-mssqldb"
)

const timeLayout = "2006-01-02 15:04:05"

var connString, table string

// Overlapping inserts would read the same last timestamp and store rows twice.
var insertSerializer sync.Mutex

func SetupRemoteDB(conf *config.Config) {
	c := &conf.RemoteDatabase
	connString = fmt.Sprintf("server=%s;user id=%s;password=%s;database=%s", c.Address, c.User, c.Password, c.Database)
	table = c.Table
}

func lastTimeQuery(table string) string {
	return `SELECT TOP (1) DateTimeStamp FROM "` + table + `" ORDER BY ID DESC;`
}

func insertQuery(table string) string {
	return `INSERT INTO "` + table + `" ("DateTimeStamp", "Molecule", "Seq", "Symbol", "AtomicNumber", "Mass", "X", "Y", "Z") ` +
		`VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9);`
}

// newerThan returns the molecules stamped after last, oldest first. Input is
// newest first.
func newerThan(mols []*molecule.Molecule, last time.Time) []*molecule.Molecule {
	res := make([]*molecule.Molecule, 0, len(mols))
	for i := len(mols) - 1; i >= 0; i-- {
		if mols[i].TimeStamp.After(last) {
			res = append(res, mols[i])
		}
	}
	return res
}

// InsertNewMolecules inserts molecules newer than the last one stored into the
// remote MS SQL Server table, one row per atom.
func InsertNewMolecules(mols []*molecule.Molecule, debug bool) error {
	insertSerializer.Lock()
	defer insertSerializer.Unlock()

	if table == "" {
		return errors.New("remote database not set up")
	}

	conn, err := sql.Open("mssql", connString)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return err
	}

	var lastTime time.Time
	if err = tx.QueryRow(lastTimeQuery(table)).Scan(&lastTime); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			tx.Rollback()
			return err
		}
	}

	// We insert wall time (without TZ), so DB returns as UTC. Convert here to local, preserving wall clock time.
	lastTime, err = time.ParseInLocation(timeLayout, lastTime.Format(timeLayout), time.Local)
	if err != nil {
		tx.Rollback()
		return err
	}

	if debug {
		log.Printf("remote DB last molecule timestamp: %s\n", lastTime)
	}

	q := insertQuery(table)
	stmt, err := tx.Prepare(q)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, m := range newerThan(mols, lastTime) {
		stamp := m.TimeStamp.Format(timeLayout)
		for seq, a := range m.Atoms {
			if debug {
				log.Println("remote DB insert:", stamp, m.Name, seq, a.String())
			}
			if _, err := stmt.Exec(stamp, m.Name, seq, a.Symbol(), a.Number(), a.Mass(), a.X(), a.Y(), a.Z()); err != nil {
				tx.Rollback()
				return fmt.Errorf("error executing insert statement for %s atom %d: %w", m.Name, seq, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}

	return nil
}
