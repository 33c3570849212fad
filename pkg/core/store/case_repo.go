package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"familylaw_toolkit/pkg/core/consistency"
	"familylaw_toolkit/pkg/core/support"
	"familylaw_toolkit/pkg/core/taxreturn"
	"familylaw_toolkit/pkg/models"
)

// CaseSnapshot is the full analysis state of one matter: the source
// documents that were compared, every calculation result, and the rendered
// report. One snapshot per analysis run.
type CaseSnapshot struct {
	CaseID    string    `json:"case_id"`
	RunID     string    `json:"run_id"`
	PartyName string    `json:"party_name"`
	CreatedAt time.Time `json:"created_at"`

	NetWorth     *models.NetWorthStatement   `json:"net_worth,omitempty"`
	TaxAnalysis  *taxreturn.Analysis         `json:"tax_analysis,omitempty"`
	Consistency  *consistency.Result         `json:"consistency,omitempty"`
	ChildSupport *support.ChildSupportResult `json:"child_support,omitempty"`
	Maintenance  *support.MaintenanceResult  `json:"maintenance,omitempty"`
	ReportText   string                      `json:"report_text,omitempty"`
}

// CaseRepo persists analysis snapshots. One JSONB blob per case keeps the
// schema stable while the result shapes evolve.
//
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS case_analyses (
//	  case_id TEXT PRIMARY KEY,
//	  run_id UUID,
//	  party_name TEXT,
//	  analysis_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
type CaseRepo struct{}

// NewCaseRepo creates a new repository instance.
func NewCaseRepo() *CaseRepo {
	return &CaseRepo{}
}

// Save upserts the snapshot keyed by case ID. A fresh run ID is assigned when
// the caller has not set one, so re-running an analysis is traceable.
func (r *CaseRepo) Save(ctx context.Context, snapshot *CaseSnapshot) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	if snapshot.RunID == "" {
		snapshot.RunID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO case_analyses (case_id, run_id, party_name, analysis_json, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (case_id)
		DO UPDATE SET
			run_id = EXCLUDED.run_id,
			party_name = EXCLUDED.party_name,
			analysis_json = EXCLUDED.analysis_json,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = pool.Exec(ctx, query, snapshot.CaseID, snapshot.RunID, snapshot.PartyName, jsonData, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save case analysis: %w", err)
	}

	return nil
}

// Load retrieves the latest snapshot for a case.
func (r *CaseRepo) Load(ctx context.Context, caseID string) (*CaseSnapshot, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT analysis_json FROM case_analyses WHERE case_id = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, caseID).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no analysis found for case %s", caseID)
		}
		return nil, fmt.Errorf("failed to load case analysis: %w", err)
	}

	var snapshot CaseSnapshot
	if err := json.Unmarshal(jsonData, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal case analysis: %w", err)
	}

	return &snapshot, nil
}
