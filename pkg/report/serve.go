package report

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Serve hosts the generated document on a local preview server. Blocks
// until the server stops.
func Serve(doc string, port int) error {
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, doc)
	}).Methods("GET")

	addr := fmt.Sprintf("localhost:%d", port)
	fmt.Printf("Report available at http://%s (Ctrl+C to stop)\n", addr)
	return http.ListenAndServe(addr, router)
}
