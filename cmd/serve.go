// =============================================================================
// Subcontract Valuations Dashboard - Serve Command
// =============================================================================
//
// This file defines the 'serve' command, which exposes the derived views as
// a JSON API for a browser front end. The server is read-only: it loads
// the snapshot per request (datasets are small and a concurrent import
// should become visible without a restart) and computes every view from
// scratch.
//
// COMMAND USAGE:
//   subdash serve [--addr :8310]
//
// ENDPOINTS (all honor ?q=, ?provider=, ?status= filters):
//   GET /api/records
//   GET /api/kpis
//   GET /api/summary/providers
//   GET /api/summary/status
//   GET /api/critical
//   GET /api/guarantee-fund
//   GET /api/simulation            (+ ?id= and ?target= for a projection)
//   GET /api/filters               (distinct providers and statuses)
//
// =============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Yrvking/dashboard-s10/internal/types"
	"github.com/Yrvking/dashboard-s10/internal/views"
)

// serveAddr overrides the configured listen address.
var serveAddr string

// serveCmd represents the 'serve' command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard views as a JSON API",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}

// =============================================================================
// SERVER
// =============================================================================

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := cfg.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	st := openStore(cfg)

	// filtered loads the snapshot and applies the request's filter params.
	filtered := func(r *http.Request) []types.DashboardRecord {
		return views.Filter(st.Load(), views.Filters{
			Search:   r.URL.Query().Get("q"),
			Provider: r.URL.Query().Get("provider"),
			Status:   r.URL.Query().Get("status"),
		})
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/records", func(w http.ResponseWriter, r *http.Request) {
		recs := filtered(r)
		field := r.URL.Query().Get("sort")
		direction := r.URL.Query().Get("dir")
		writeJSON(w, views.SortDetail(recs, field, direction))
	})

	mux.HandleFunc("/api/kpis", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, views.ComputeKPIs(filtered(r)))
	})

	mux.HandleFunc("/api/summary/providers", func(w http.ResponseWriter, r *http.Request) {
		summaries := views.ProviderSummaries(filtered(r))
		field := r.URL.Query().Get("sort")
		direction := r.URL.Query().Get("dir")
		if field != "" {
			summaries = views.SortProviderSummaries(summaries, field, direction)
		}
		writeJSON(w, summaries)
	})

	mux.HandleFunc("/api/summary/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, views.StatusSummaries(filtered(r)))
	})

	mux.HandleFunc("/api/critical", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, views.CriticalContracts(filtered(r), cfg.CriticalLimit))
	})

	mux.HandleFunc("/api/guarantee-fund", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, views.ComputeGuaranteeFund(filtered(r)))
	})

	mux.HandleFunc("/api/filters", func(w http.ResponseWriter, r *http.Request) {
		records := st.Load()
		writeJSON(w, map[string][]string{
			"providers": views.Providers(records),
			"statuses":  views.Statuses(records),
		})
	})

	mux.HandleFunc("/api/simulation", func(w http.ResponseWriter, r *http.Request) {
		items := views.SimulationItems(filtered(r))

		simID := r.URL.Query().Get("id")
		if simID == "" {
			writeJSON(w, items)
			return
		}

		item, ok := views.FindSimulationItem(items, simID)
		if !ok {
			http.Error(w, "simulation item not found", http.StatusNotFound)
			return
		}

		target := item.ProgressPct
		if raw := r.URL.Query().Get("target"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				target = v
			}
		}
		writeJSON(w, views.Simulate(item, target))
	})

	fmt.Printf("Serving dashboard API on %s (snapshot: %s)\n", addr, cfg.DataFile)
	return http.ListenAndServe(addr, mux)
}

// writeJSON renders v as a JSON response.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
