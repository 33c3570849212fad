package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"familylaw_toolkit/pkg/core/intake"
)

// IntakeDocument is one raw client document attached to a case, with the
// fields pulled out of it at intake time.
type IntakeDocument struct {
	CaseID       string                  `json:"case_id"`
	DocumentID   string                  `json:"document_id"`
	DocumentType string                  `json:"document_type"`
	RawText      string                  `json:"raw_text"`
	Extracted    *intake.ExtractedFields `json:"extracted,omitempty"`
}

// DocumentRepo stores intake documents so an analysis can be re-run against
// the original evidence.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS intake_documents (
//	  case_id TEXT,
//	  document_id TEXT,
//	  document_type TEXT,
//	  raw_text TEXT,
//	  extracted JSONB,
//	  updated_at TIMESTAMPTZ,
//	  PRIMARY KEY (case_id, document_id)
//	);
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepo creates a new document repository.
func NewDocumentRepo(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// SaveDocument upserts one intake document keyed by case and document ID.
func (r *DocumentRepo) SaveDocument(ctx context.Context, doc *IntakeDocument) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not configured")
	}

	var extractedJSON []byte
	if doc.Extracted != nil {
		var err error
		extractedJSON, err = json.Marshal(doc.Extracted)
		if err != nil {
			return fmt.Errorf("failed to marshal extracted fields: %w", err)
		}
	}

	query := `
		INSERT INTO intake_documents (
			case_id, document_id, document_type, raw_text, extracted, updated_at
		) VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (case_id, document_id)
		DO UPDATE SET
			document_type = EXCLUDED.document_type,
			raw_text = EXCLUDED.raw_text,
			extracted = EXCLUDED.extracted,
			updated_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query,
		doc.CaseID, doc.DocumentID, doc.DocumentType, doc.RawText, extractedJSON)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

// GetDocumentsByCase retrieves all documents attached to a case.
func (r *DocumentRepo) GetDocumentsByCase(ctx context.Context, caseID string) ([]*IntakeDocument, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT document_id, document_type, raw_text, extracted
		FROM intake_documents
		WHERE case_id = $1
		ORDER BY document_id
	`

	rows, err := r.pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []*IntakeDocument
	for rows.Next() {
		doc := IntakeDocument{CaseID: caseID}
		var extractedJSON []byte

		if err := rows.Scan(&doc.DocumentID, &doc.DocumentType, &doc.RawText, &extractedJSON); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}

		if len(extractedJSON) > 0 {
			json.Unmarshal(extractedJSON, &doc.Extracted)
		}
		docs = append(docs, &doc)
	}

	return docs, nil
}

// DocumentExists checks if a document is already attached to the case.
func (r *DocumentRepo) DocumentExists(ctx context.Context, caseID, documentID string) bool {
	if r.pool == nil {
		return false
	}

	query := `SELECT 1 FROM intake_documents WHERE case_id = $1 AND document_id = $2 LIMIT 1`
	var exists int
	err := r.pool.QueryRow(ctx, query, caseID, documentID).Scan(&exists)
	return err == nil
}
