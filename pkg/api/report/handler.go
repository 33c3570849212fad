package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"familylaw_toolkit/pkg/core/assistant"
	"familylaw_toolkit/pkg/core/consistency"
	"familylaw_toolkit/pkg/core/intake"
	"familylaw_toolkit/pkg/core/report"
	"familylaw_toolkit/pkg/core/store"
	"familylaw_toolkit/pkg/core/support"
	"familylaw_toolkit/pkg/core/taxreturn"
	"familylaw_toolkit/pkg/core/utils"
	"familylaw_toolkit/pkg/models"
)

var assembler *report.Assembler
var calculator *support.Calculator
var analyzer *consistency.Analyzer
var taxAnalyzer *taxreturn.Analyzer
var archive *store.ArchiveCache
var narrator *assistant.Narrator

// InitHandler wires the full pipeline into the report endpoint. The narrator
// may be nil when no generation backend is configured.
func InitHandler(
	asm *report.Assembler,
	calc *support.Calculator,
	a *consistency.Analyzer,
	ta *taxreturn.Analyzer,
	arc *store.ArchiveCache,
	n *assistant.Narrator,
) {
	assembler = asm
	calculator = calc
	analyzer = a
	taxAnalyzer = ta
	archive = arc
	narrator = n
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// FullReportRequest carries all documents and calculation inputs for one
// end-to-end analysis run.
type FullReportRequest struct {
	CaseID         string                     `json:"case_id"`
	PartyName      string                     `json:"party_name"`
	NetWorth       *models.NetWorthStatement  `json:"net_worth"`
	TaxForm        models.TaxForm             `json:"tax_form"`
	PayStubs       json.RawMessage            `json:"pay_stubs"`
	BankStatements []models.BankStatement     `json:"bank_statements"`

	ChildSupport *support.ChildSupportParams `json:"child_support,omitempty"`
	Maintenance  *support.MaintenanceParams  `json:"maintenance,omitempty"`

	Format    string `json:"format,omitempty"` // "text" (default) or "html"
	Narrative bool   `json:"narrative,omitempty"`
}

// FullReportResponse is the rendered report plus the structured results it
// was rendered from.
type FullReportResponse struct {
	Report       string                      `json:"report"`
	ReportHTML   string                      `json:"report_html,omitempty"`
	Narrative    string                      `json:"narrative,omitempty"`
	TaxAnalysis  *taxreturn.Analysis         `json:"tax_analysis,omitempty"`
	Consistency  *consistency.Result         `json:"consistency"`
	ChildSupport *support.ChildSupportResult `json:"child_support,omitempty"`
	Maintenance  *support.MaintenanceResult  `json:"maintenance,omitempty"`
}

// HandleFullReport runs the complete pipeline: tax analysis, cross-document
// comparison, support calculations, report assembly, and archival.
func HandleFullReport(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req FullReportRequest
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

	consistencyResult := analyzer.CompareDocuments(req.NetWorth, taxAnalysis, payStubs, req.BankStatements)

	var childSupport *support.ChildSupportResult
	if req.ChildSupport != nil {
		result := calculator.CalculateChildSupport(*req.ChildSupport)
		childSupport = &result
	}
	var maintenance *support.MaintenanceResult
	if req.Maintenance != nil {
		result := calculator.CalculateMaintenance(*req.Maintenance)
		maintenance = &result
	}

	reportText := assembler.FullAnalysis(report.FullAnalysisParams{
		PartyName:    req.PartyName,
		NetWorth:     req.NetWorth,
		ChildSupport: childSupport,
		Maintenance:  maintenance,
		Consistency:  consistencyResult,
	})

	resp := FullReportResponse{
		Report:       reportText,
		TaxAnalysis:  taxAnalysis,
		Consistency:  consistencyResult,
		ChildSupport: childSupport,
		Maintenance:  maintenance,
	}

	if req.Format == "html" {
		// The fixed-width report reads best preformatted.
		html, err := utils.RenderHTML("```\n" + reportText + "\n```")
		if err != nil {
			fmt.Printf("[REPORT] Warning: html rendering failed: %v\n", err)
		} else {
			resp.ReportHTML = html
		}
	}

	if req.Narrative && narrator != nil {
		summary, err := narrator.SummarizeReport(r.Context(), reportText)
		if err != nil {
			fmt.Printf("[REPORT] Warning: narrative generation failed: %v\n", err)
		} else {
			resp.Narrative = summary
		}
	}

	fmt.Printf("[REPORT] Full analysis: case=%q party=%q score=%.0f\n",
		req.CaseID, req.PartyName, consistencyResult.ConsistencyScore)

	if req.CaseID != "" && archive != nil {
		snapshot := &store.CaseSnapshot{
			CaseID:       req.CaseID,
			PartyName:    req.PartyName,
			NetWorth:     req.NetWorth,
			TaxAnalysis:  taxAnalysis,
			Consistency:  consistencyResult,
			ChildSupport: childSupport,
			Maintenance:  maintenance,
			ReportText:   reportText,
		}
		if err := archive.Save(context.Background(), snapshot); err != nil {
			fmt.Printf("[REPORT] Warning: failed to archive case %s: %v\n", req.CaseID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ArchiveRequest looks up a stored analysis snapshot. Case ID takes
// precedence; party name falls back to the most recent snapshot.
type ArchiveRequest struct {
	CaseID    string `json:"case_id,omitempty"`
	PartyName string `json:"party_name,omitempty"`
}

// HandleArchive retrieves a previously archived analysis.
func HandleArchive(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req ArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.CaseID == "" && req.PartyName == "" {
		http.Error(w, "case_id or party_name is required", http.StatusBadRequest)
		return
	}

	var (
		snapshot *store.CaseSnapshot
		err      error
	)
	if req.CaseID != "" {
		snapshot, err = archive.Get(r.Context(), req.CaseID)
	} else {
		snapshot, err = archive.GetByParty(r.Context(), req.PartyName)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if snapshot == nil {
		http.Error(w, "no archived analysis found", http.StatusNotFound)
		return
	}

	fmt.Printf("[REPORT] Archive hit: case=%q party=%q\n", snapshot.CaseID, snapshot.PartyName)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}

// SupportReportRequest renders the attorney work product support analysis.
type SupportReportRequest struct {
	report.SupportReportParams
	ChildSupportParams support.ChildSupportParams `json:"child_support_params"`
	MaintenanceParams  support.MaintenanceParams  `json:"maintenance_params"`
}

// HandleSupportReport computes both obligations and renders the support
// calculation report.
func HandleSupportReport(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req SupportReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.ChildSupport = calculator.CalculateChildSupport(req.ChildSupportParams)
	req.Maintenance = calculator.CalculateMaintenance(req.MaintenanceParams)

	text := assembler.SupportReport(req.SupportReportParams)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"report":        text,
		"child_support": req.ChildSupport,
		"maintenance":   req.Maintenance,
	})
}
