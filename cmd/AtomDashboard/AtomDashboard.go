package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/RoanBrand/AtomDashboard/config"
	"github.com/RoanBrand/AtomDashboard/http"
	"github.com/RoanBrand/AtomDashboard/log"
	"github.com/RoanBrand/AtomDashboard/mdb"
	"github.com/RoanBrand/AtomDashboard/molecule"
	"github.com/RoanBrand/AtomDashboard/remotedb"
	"github.com/RoanBrand/AtomDashboard/xyz"
	"github.com/kardianos/service"
)

const cacheAge = time.Second * 5

type app struct {
	conf *config.Config

	// source of local molecules, newest first
	local func() ([]*molecule.Molecule, error)
	// nil when no remote database is configured
	forward func([]*molecule.Molecule) error

	// result cache
	cLock   sync.RWMutex
	cAge    time.Time
	cMols   []*molecule.Molecule
	cResult []byte
}

func (p *app) setup(conf *config.Config) {
	p.conf = conf

	switch conf.DataType {
	case config.DataTypeMDB:
		p.local = func() ([]*molecule.Molecule, error) {
			return mdb.GetResults(conf.DataSource, conf.NumberOfResults)
		}
	default:
		p.local = func() ([]*molecule.Molecule, error) {
			return xyz.GetResults(conf.DataSource, conf.NumberOfResults)
		}
	}

	if conf.RemoteDatabase.Address != "" {
		remotedb.SetupRemoteDB(conf)
		p.forward = func(mols []*molecule.Molecule) error {
			return remotedb.InsertNewMolecules(mols, conf.DebugMode)
		}
	}
}

func (p *app) Start(s service.Service) error {
	go p.run()
	return nil
}

func (p *app) run() {
	execPath, err := os.Executable()
	if err != nil {
		panic(err)
	}

	conf, err := config.LoadConfig(filepath.Join(filepath.Dir(execPath), "config.json"))
	if err != nil {
		panic(err)
	}

	log.Setup(filepath.Join(filepath.Dir(execPath), "atomdashboard.log"), conf.DebugMode)

	p.setup(conf)
	http.SetupServer(filepath.Join(filepath.Dir(execPath), "static"), p.getResults, p.writeListing)

	if err = http.StartServer(conf.HTTPServerPort); err != nil {
		panic(err)
	}
}

func (p *app) Stop(s service.Service) error {
	return log.Close()
}

func main() {
	svcFlag := flag.String("service", "", "Control the system service.")
	flag.Parse()

	svcConfig := &service.Config{
		Name:        "AtomDashboard",
		DisplayName: "Atom Dashboard App",
		Description: "Provides webpage that displays the latest molecular geometries",
	}

	prg := &app{}
	s, err := service.New(prg, svcConfig)
	if err != nil {
		log.Fatal(err)
	}

	if *svcFlag != "" {
		err = service.Control(s, *svcFlag)
		if err != nil {
			log.Printf("Valid actions: %q\n", service.ControlAction)
			log.Fatal(err)
		}
		return
	}

	logger, err := s.Logger(nil)
	if err != nil {
		log.Fatal(err)
	}
	err = s.Run()
	if err != nil {
		logger.Error(err)
	}
}

// refresh reloads the cache if it is older than cacheAge and returns the
// cached molecules and their JSON.
func (p *app) refresh() ([]*molecule.Molecule, []byte, error) {
	// check if cache recent enough
	p.cLock.RLock()
	if time.Since(p.cAge) < cacheAge {
		defer p.cLock.RUnlock()
		return p.cMols, p.cResult, nil
	}

	// is old, get write lock and perform request
	p.cLock.RUnlock()
	p.cLock.Lock()
	defer p.cLock.Unlock()

	// need to check if result still old, otherwise return new result
	if time.Since(p.cAge) < cacheAge {
		return p.cMols, p.cResult, nil
	}

	var remoteRes []*molecule.Molecule
	var remoteDone chan struct{}

	if p.conf.RemoteMachineAddress != "" {
		remoteDone = make(chan struct{})
		errOccurred := func(err ...interface{}) {
			log.Println("Error retrieving remote results from", p.conf.RemoteMachineAddress, ":", err)
		}
		go func() {
			defer close(remoteDone)

			resp, err := http.GetRemoteResults(p.conf.RemoteMachineAddress)
			if err != nil {
				errOccurred(err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != 200 {
				errOccurred(resp.StatusCode, " ", resp.Status)
				return
			}

			if err = json.NewDecoder(resp.Body).Decode(&remoteRes); err != nil {
				errOccurred(err)
			}
		}()
	}

	allResults, err := p.local()
	if err != nil {
		log.Println("Error retrieving local results from", p.conf.DataSource, ":", err)
	} else if len(allResults) == 0 {
		log.Println("0 results found in", p.conf.DataSource)
	}

	if remoteDone != nil {
		<-remoteDone
		allResults = append(allResults, remoteRes...)
	}

	if allResults == nil {
		allResults = []*molecule.Molecule{}
	}
	sort.SliceStable(allResults, func(i, j int) bool {
		return allResults[i].TimeStamp.After(allResults[j].TimeStamp)
	})

	// limit results after merge
	if len(allResults) > p.conf.NumberOfResults {
		allResults = allResults[:p.conf.NumberOfResults]
	}

	// insert all into remote table that are newer than last inserted
	if p.forward != nil {
		go func(res []*molecule.Molecule) {
			if err := p.forward(res); err != nil {
				log.Println("Error inserting new molecules into remote database:", err)
			}
		}(allResults)
	}

	resJSON, err := json.Marshal(allResults)
	if err != nil {
		return nil, nil, err
	}

	p.cMols = allResults
	p.cResult = resJSON
	p.cAge = time.Now()
	return allResults, resJSON, nil
}

// never returns an error for a failing source, only for marshalling.
func (p *app) getResults() ([]byte, error) {
	_, res, err := p.refresh()
	return res, err
}

func (p *app) writeListing(w io.Writer) error {
	mols, _, err := p.refresh()
	if err != nil {
		return err
	}

	for i, m := range mols {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := m.WriteListing(w); err != nil {
			return err
		}
	}
	return nil
}
