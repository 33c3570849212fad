package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ArchiveCache stores case snapshots with a hybrid strategy: Postgres when a
// pool is configured, a local file directory otherwise. The file fallback
// keeps solo-practitioner installs working without a database.
type ArchiveCache struct {
	pool    *pgxpool.Pool
	repo    *CaseRepo
	fileDir string
}

// NewArchiveCache creates a cache instance. If pool is nil the cache falls
// back to files in dir; an empty dir defaults to .cache/case_archive.
func NewArchiveCache(pool *pgxpool.Pool, dir string) *ArchiveCache {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "case_archive")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check ArchiveCache dir: %v\n", err)
		}
	}
	return &ArchiveCache{pool: pool, repo: NewCaseRepo(), fileDir: dir}
}

// Get retrieves a snapshot by case ID.
func (c *ArchiveCache) Get(ctx context.Context, caseID string) (*CaseSnapshot, error) {
	if c.pool != nil {
		snapshot, err := c.repo.Load(ctx, caseID)
		if err != nil {
			return nil, nil // cache miss
		}
		return snapshot, nil
	}

	if c.fileDir != "" {
		return c.loadFromFile(c.casePath(caseID))
	}

	return nil, nil
}

// GetByParty scans for the most recently written snapshot for a party name.
// Only the file fallback needs the scan; the database can query directly.
func (c *ArchiveCache) GetByParty(ctx context.Context, partyName string) (*CaseSnapshot, error) {
	if c.pool != nil {
		query := `
			SELECT analysis_json
			FROM case_analyses
			WHERE party_name = $1
			ORDER BY updated_at DESC
			LIMIT 1
		`
		var jsonData []byte
		if err := c.pool.QueryRow(ctx, query, partyName).Scan(&jsonData); err != nil {
			return nil, nil
		}
		var snapshot CaseSnapshot
		if err := json.Unmarshal(jsonData, &snapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cached snapshot: %w", err)
		}
		return &snapshot, nil
	}

	if c.fileDir != "" {
		return c.scanFileCache(partyName)
	}

	return nil, nil
}

// Save stores the snapshot in the database when configured, and always in
// the file directory when one is set.
func (c *ArchiveCache) Save(ctx context.Context, snapshot *CaseSnapshot) error {
	if c.pool != nil {
		if err := c.repo.Save(ctx, snapshot); err != nil {
			return err
		}
	}

	if c.fileDir != "" {
		fileBytes, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		if err := os.WriteFile(c.casePath(snapshot.CaseID), fileBytes, 0644); err != nil {
			return fmt.Errorf("failed to save to file cache: %w", err)
		}
	}

	return nil
}

// Exists checks if a case already has an archived snapshot.
func (c *ArchiveCache) Exists(ctx context.Context, caseID string) bool {
	if c.pool != nil {
		query := `SELECT 1 FROM case_analyses WHERE case_id = $1 LIMIT 1`
		var exists int
		if err := c.pool.QueryRow(ctx, query, caseID).Scan(&exists); err == nil {
			return true
		}
	}

	if c.fileDir != "" {
		if _, err := os.Stat(c.casePath(caseID)); err == nil {
			return true
		}
	}

	return false
}

func (c *ArchiveCache) casePath(caseID string) string {
	// Case IDs come from court captions and may contain slashes.
	safe := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(caseID)
	return filepath.Join(c.fileDir, safe+".json")
}

func (c *ArchiveCache) loadFromFile(path string) (*CaseSnapshot, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil // not found
	}
	var snapshot CaseSnapshot
	if err := json.Unmarshal(fileBytes, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *ArchiveCache) scanFileCache(partyName string) (*CaseSnapshot, error) {
	entries, err := os.ReadDir(c.fileDir)
	if err != nil {
		return nil, nil
	}

	var latest *CaseSnapshot
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		snapshot, err := c.loadFromFile(filepath.Join(c.fileDir, entry.Name()))
		if err != nil || snapshot == nil {
			continue
		}
		if !strings.EqualFold(snapshot.PartyName, partyName) {
			continue
		}
		if latest == nil || snapshot.CreatedAt.After(latest.CreatedAt) {
			latest = snapshot
		}
	}
	return latest, nil
}
