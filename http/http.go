package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/RoanBrand/AtomDashboard/element"
	"github.com/RoanBrand/AtomDashboard/log"
)

var mux *http.ServeMux
var resultFunc func() ([]byte, error)
var listingFunc func(w io.Writer) error

// SetupServer registers the endpoints. resultGetter returns the latest
// molecules as JSON, listingGetter writes them as fixed-width text.
func SetupServer(staticFilesPath string, resultGetter func() ([]byte, error), listingGetter func(io.Writer) error) http.Handler {
	resultFunc = resultGetter
	listingFunc = listingGetter

	mux = http.NewServeMux()
	if staticFilesPath != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticFilesPath)))
	}
	mux.HandleFunc("/elements", elementsEndpoint)
	mux.HandleFunc("/element", elementEndpoint)
	mux.HandleFunc("/results", resultEndpoint)
	mux.HandleFunc("/listing", listingEndpoint)
	return mux
}

func StartServer(port string) error {
	if mux == nil {
		return errors.New("server not set up")
	}
	log.Println("Starting AtomDashboard service")
	return http.ListenAndServe(":"+port, mux)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func elementsEndpoint(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, element.All())
}

// /element?symbol=C or /element?z=6
func elementEndpoint(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if s := q.Get("symbol"); s != "" {
		n, err := element.Number(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, element.Lookup(n))
		return
	}

	z := q.Get("z")
	if z == "" {
		http.Error(w, "symbol or z query parameter required", http.StatusBadRequest)
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(z))
	if err != nil {
		http.Error(w, "invalid atomic number: "+z, http.StatusBadRequest)
		return
	}
	writeJSON(w, element.Lookup(n))
}

func resultEndpoint(w http.ResponseWriter, r *http.Request) {
	results, err := resultFunc()
	if err != nil {
		errMsg := "Error querying results: " + err.Error()
		log.Println(errMsg)
		http.Error(w, errMsg, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(results); err != nil {
		log.Println("Error writing results:", err)
	}
}

func listingEndpoint(w http.ResponseWriter, r *http.Request) {
	if listingFunc == nil {
		http.NotFound(w, r)
		return
	}

	var sb strings.Builder
	if err := listingFunc(&sb); err != nil {
		errMsg := "Error querying results: " + err.Error()
		log.Println(errMsg)
		http.Error(w, errMsg, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, sb.String())
}

func GetRemoteResults(remoteAddress string) (*http.Response, error) {
	if !strings.HasPrefix(remoteAddress, "http://") {
		remoteAddress = "http://" + remoteAddress
	}
	if !strings.HasSuffix(remoteAddress, "/results") {
		remoteAddress = remoteAddress + "/results"
	}
	return http.Get(remoteAddress)
}
