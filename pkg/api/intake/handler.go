package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"familylaw_toolkit/pkg/core/intake"
	"familylaw_toolkit/pkg/core/store"
)

var documents *store.DocumentRepo

// InitHandler wires the document repository into the handlers. A nil repo
// disables persistence; extraction still works.
func InitHandler(docs *store.DocumentRepo) {
	documents = docs
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// FieldsRequest is raw OCR text from a scanned document. When a case ID is
// supplied the document and its extracted fields are attached to the case.
type FieldsRequest struct {
	CaseID     string `json:"case_id,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
	Text       string `json:"text"`
}

// HandleExtractFields pulls structured fields out of raw OCR text.
func HandleExtractFields(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req FieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	fields := intake.ExtractFields(req.Text)
	fmt.Printf("[INTAKE] Extracted fields: type=%s amounts=%d dates=%d\n",
		fields.DocumentType, len(fields.Amounts), len(fields.Dates))

	if req.CaseID != "" && documents != nil {
		docID := req.DocumentID
		if docID == "" {
			docID = uuid.New().String()
		} else if documents.DocumentExists(r.Context(), req.CaseID, docID) {
			fmt.Printf("[INTAKE] Replacing document %s on case %s\n", docID, req.CaseID)
		}
		doc := &store.IntakeDocument{
			CaseID:       req.CaseID,
			DocumentID:   docID,
			DocumentType: fields.DocumentType,
			RawText:      req.Text,
			Extracted:    fields,
		}
		if err := documents.SaveDocument(context.Background(), doc); err != nil {
			fmt.Printf("[INTAKE] Warning: failed to store document for case %s: %v\n", req.CaseID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fields)
}

// HandleCaseDocuments lists the documents attached to a case.
func HandleCaseDocuments(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req struct {
		CaseID string `json:"case_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.CaseID == "" {
		http.Error(w, "case_id is required", http.StatusBadRequest)
		return
	}
	if documents == nil {
		http.Error(w, "document store not configured", http.StatusServiceUnavailable)
		return
	}

	docs, err := documents.GetDocumentsByCase(r.Context(), req.CaseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(docs)
}

// HandleStatementHTML imports an HTML bank statement export. The body may be
// raw HTML (Content-Type text/html) or a JSON envelope {"html": "..."}.
func HandleStatementHTML(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	html := string(body)
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var envelope struct {
			HTML string `json:"html"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		html = envelope.HTML
	}
	if strings.TrimSpace(html) == "" {
		http.Error(w, "html is required", http.StatusBadRequest)
		return
	}

	stmt, err := intake.ParseStatementHTML(html)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stmt)
}

// DocumentRequest is a lenient-JSON document upload.
type DocumentRequest struct {
	DocumentType string `json:"document_type"` // net_worth | tax_form | pay_stubs | bank_statements
	Payload      string `json:"payload"`
}

// HandleParseDocument normalizes a sloppy JSON document into its typed
// record. The payload may contain trailing commas, comments, or unquoted
// keys; the intake parsers repair what they can.
func HandleParseDocument(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var (
		result interface{}
		err    error
	)
	switch req.DocumentType {
	case "net_worth":
		result, err = intake.ParseNetWorthStatement(req.Payload)
	case "tax_form":
		result, err = intake.ParseTaxForm(req.Payload)
	case "pay_stubs":
		result, err = intake.ParsePayStubs(req.Payload)
	case "bank_statements":
		result, err = intake.ParseBankStatements(req.Payload)
	default:
		http.Error(w, fmt.Sprintf("unknown document_type: %q", req.DocumentType), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	fmt.Printf("[INTAKE] Parsed document: type=%s\n", req.DocumentType)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
