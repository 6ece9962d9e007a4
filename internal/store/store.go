// =============================================================================
// Subcontract Valuations Dashboard - Snapshot Store
// =============================================================================
//
// Persistence is a single JSON snapshot of the full record set, written
// after every mutation and read at startup. The store is deliberately
// forgiving: a missing, unreadable or corrupt snapshot degrades to the
// built-in seed record (never an error surfaced to the user), and a failed
// save leaves the in-memory state authoritative. The dashboard is an
// advisory tool; availability wins over strictness here.
//
// Record JSON tags mirror the "dashboardSubcontratosData_v3" schema of the
// original browser dashboard, so state exported from a browser session
// loads unchanged.
//
// =============================================================================

package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Yrvking/dashboard-s10/internal/enrich"
	"github.com/Yrvking/dashboard-s10/internal/types"
)

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is the persisted envelope around the record set.
type Snapshot struct {
	// SnapshotID identifies this particular write.
	SnapshotID string `json:"snapshot_id"`

	// SavedAt is the write timestamp.
	SavedAt time.Time `json:"saved_at"`

	// Records is the full record set; the set is the unit of persistence.
	Records []types.DashboardRecord `json:"records"`
}

// =============================================================================
// STORE
// =============================================================================

// Store reads and writes the snapshot at a fixed path.
type Store struct {
	// Path is the snapshot file location.
	Path string

	// SeedWhenEmpty controls whether Load falls back to the built-in seed
	// record when no usable snapshot exists.
	SeedWhenEmpty bool
}

// New creates a store for the given snapshot path.
func New(path string, seedWhenEmpty bool) *Store {
	return &Store{Path: path, SeedWhenEmpty: seedWhenEmpty}
}

// Load returns the enriched record set from the snapshot. Every failure
// path (missing file, bad JSON, empty record list) silently falls back to
// the seed when enabled, or to an empty set.
func (s *Store) Load() []types.DashboardRecord {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return s.fallback()
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Accept a bare record array too: that is what the browser
		// dashboard exported.
		var records []types.DashboardRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return s.fallback()
		}
		snap.Records = records
	}
	if len(snap.Records) == 0 {
		return s.fallback()
	}
	return enrich.EnrichAll(snap.Records)
}

// Save writes the full record set as a fresh snapshot. Best effort: the
// caller may ignore the error, the in-memory set stays authoritative.
func (s *Store) Save(records []types.DashboardRecord) error {
	snap := Snapshot{
		SnapshotID: uuid.New().String(),
		SavedAt:    time.Now().UTC(),
		Records:    records,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, data, 0644)
}

func (s *Store) fallback() []types.DashboardRecord {
	if !s.SeedWhenEmpty {
		return []types.DashboardRecord{}
	}
	return enrich.EnrichAll(Seed())
}

// =============================================================================
// SEED
// =============================================================================

// Seed is the built-in fallback record set used when neither an import nor
// a snapshot is available, so every view renders with plausible data.
func Seed() []types.DashboardRecord {
	return []types.DashboardRecord{
		{
			ID:                1,
			Provider:          "2 A INGENIEROS S.A.C.",
			Specialty:         "INSTALACIONES ELÉCTRICAS",
			ContractNumber:    types.String("001"),
			ServiceOrderCode:  "OS-2025-001",
			Contracted:        150000,
			DirectCost:        120000,
			DirectCostBudget:  150000 / types.TaxFactor,
			ProgressPct:       80,
			ValuationLabel:    types.String("ACUM-VAL 04"),
			Status:            types.StatusInProgress,
			Date:              types.String("2025-10-12"),
			Advance:           20000,
			AdvanceCalculated: types.Float(20000),
			AdvanceAmortized:  types.Float(15000),
			ContractName:      "INSTALACIONES ELÉCTRICAS PISOS 14 Y 15",
			Valuations:        []types.WeeklyValuation{},
			Retained:          5000,
		},
	}
}
