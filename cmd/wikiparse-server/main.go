// Command wikiparse-server exposes wikiparse.Parse over a tiny HTTP API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/kasrell/wikiparse"
	"github.com/kasrell/wikiparse/ast"
)

// corsOrigins lists the front-ends allowed to call this API from a
// browser. Anything else gets no CORS headers and the request falls back
// to same-origin rules.
var corsOrigins = []string{
	"http://localhost:5173",
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// withCORS wraps a handler with the allowed-origin check above, and
// short-circuits preflight OPTIONS requests.
func withCORS(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(corsOrigins))
	for _, o := range corsOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); allowed[origin] {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	mux := http.NewServeMux()

	mux.HandleFunc("/parse", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req struct {
			Wikitext          string `json:"wikitext"`
			BacktrackingLimit int    `json:"backtrackingLimit"`
			AsText            bool   `json:"asText"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Wikitext == "" {
			respondError(w, http.StatusBadRequest, "missing field: wikitext")
			return
		}

		nodes, err := wikiparse.Parse(req.Wikitext, wikiparse.Options{
			BacktrackingLimit: req.BacktrackingLimit,
			ReturnError:       true,
		})
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		if req.AsText {
			respondJSON(w, http.StatusOK, struct {
				Text string `json:"text"`
			}{Text: wikiparse.AstToText(nodes, wikiparse.TextOptions{})})
			return
		}

		respondJSON(w, http.StatusOK, struct {
			Nodes []ast.Node `json:"nodes"`
		}{Nodes: nodes})
	})

	addr := fmt.Sprintf(":%d", *port)
	fmt.Printf("wikiparse server listening on %s\n", addr)
	if err := http.ListenAndServe(addr, withCORS(mux)); err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "server error: %v\n", err)
	}
}
