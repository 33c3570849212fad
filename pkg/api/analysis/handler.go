package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"familylaw_toolkit/pkg/core/consistency"
	"familylaw_toolkit/pkg/core/intake"
	"familylaw_toolkit/pkg/core/store"
	"familylaw_toolkit/pkg/core/taxreturn"
	"familylaw_toolkit/pkg/models"
)

var analyzer *consistency.Analyzer
var taxAnalyzer *taxreturn.Analyzer
var archive *store.ArchiveCache

// InitHandler wires the analyzers and the case archive into the handlers.
func InitHandler(a *consistency.Analyzer, ta *taxreturn.Analyzer, arc *store.ArchiveCache) {
	analyzer = a
	taxAnalyzer = ta
	archive = arc
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// CompareRequest carries every document for one cross-document comparison.
// Pay stubs arrive as raw JSON so the lenient intake parser can normalize
// their date formats.
type CompareRequest struct {
	CaseID         string                     `json:"case_id"`
	PartyName      string                     `json:"party_name"`
	NetWorth       *models.NetWorthStatement  `json:"net_worth"`
	TaxForm        models.TaxForm             `json:"tax_form"`
	PayStubs       json.RawMessage            `json:"pay_stubs"`
	BankStatements []models.BankStatement     `json:"bank_statements"`
}

// CompareResponse is the tax analysis plus the full consistency result.
type CompareResponse struct {
	TaxAnalysis *taxreturn.Analysis `json:"tax_analysis,omitempty"`
	Consistency *consistency.Result `json:"consistency"`
}

// HandleCompare runs the full cross-document consistency pipeline and
// archives the snapshot when a case ID is supplied.
func HandleCompare(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var payStubs []models.PayStub
	if len(req.PayStubs) > 0 {
		var err error
		payStubs, err = intake.ParsePayStubs(string(req.PayStubs))
		if err != nil {
			http.Error(w, fmt.Sprintf("pay stubs: %v", err), http.StatusBadRequest)
			return
		}
	}

	var taxAnalysis *taxreturn.Analysis
	if len(req.TaxForm) > 0 {
		taxAnalysis = taxAnalyzer.Analyze1040(req.TaxForm)
	}

	result := analyzer.CompareDocuments(req.NetWorth, taxAnalysis, payStubs, req.BankStatements)
	fmt.Printf("[ANALYSIS] Compare: case=%q score=%.0f discrepancies=%d indicators=%d\n",
		req.CaseID, result.ConsistencyScore, result.TotalDiscrepancies(), len(result.HiddenIncomeIndicators))

	if req.CaseID != "" && archive != nil {
		snapshot := &store.CaseSnapshot{
			CaseID:      req.CaseID,
			PartyName:   req.PartyName,
			NetWorth:    req.NetWorth,
			TaxAnalysis: taxAnalysis,
			Consistency: result,
		}
		if err := archive.Save(context.Background(), snapshot); err != nil {
			fmt.Printf("[ANALYSIS] Warning: failed to archive case %s: %v\n", req.CaseID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CompareResponse{
		TaxAnalysis: taxAnalysis,
		Consistency: result,
	})
}

// TaxReturnRequest is a raw 1040 form keyed by line labels.
type TaxReturnRequest struct {
	TaxForm models.TaxForm `json:"tax_form"`
}

// HandleTaxReturn extracts income categories and red flags from a 1040 form.
func HandleTaxReturn(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req TaxReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.TaxForm) == 0 {
		http.Error(w, "tax_form is required", http.StatusBadRequest)
		return
	}

	result := taxAnalyzer.Analyze1040(req.TaxForm)
	fmt.Printf("[ANALYSIS] Tax return: agi=%.2f red_flags=%d\n",
		result.AdjustedGrossIncome, len(result.RedFlags))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
