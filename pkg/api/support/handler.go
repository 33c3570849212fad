package support

import (
	"encoding/json"
	"fmt"
	"net/http"

	"familylaw_toolkit/pkg/core/report"
	"familylaw_toolkit/pkg/core/support"
)

var calculator *support.Calculator
var assembler *report.Assembler

// InitHandler wires the calculator and report assembler into the handlers.
func InitHandler(calc *support.Calculator, asm *report.Assembler) {
	calculator = calc
	assembler = asm
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleChildSupport computes the CSSA obligation for the posted parameters.
func HandleChildSupport(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var params support.ChildSupportParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := calculator.CalculateChildSupport(params)
	fmt.Printf("[SUPPORT] Child support: %d children, combined=%.2f, total=%.2f\n",
		params.NumChildren, result.CombinedParentalIncome, result.TotalObligation)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleMaintenance computes the maintenance guideline award.
func HandleMaintenance(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var params support.MaintenanceParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := calculator.CalculateMaintenance(params)
	fmt.Printf("[SUPPORT] Maintenance: amount=%.2f duration=%q cap_applied=%v\n",
		result.MaintenanceAmount, result.Duration, result.IncomeCapApplied)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// WorksheetRequest is the worksheet calculation input, with optional caption
// fields to render the filing document.
type WorksheetRequest struct {
	support.WorksheetParams
	County             string             `json:"county"`
	CustodialParent    string             `json:"custodial_parent"`
	NonCustodialParent string             `json:"non_custodial_parent"`
	Children           []report.ChildEntry `json:"children"`
	RenderDocument     bool               `json:"render_document"`
}

// WorksheetResponse carries the figures and, when requested, the rendered
// worksheet text.
type WorksheetResponse struct {
	Result   support.WorksheetResult `json:"result"`
	Document string                  `json:"document,omitempty"`
}

// HandleWorksheet computes the capped CSSA worksheet figures and optionally
// renders the DRL 240(1-b) worksheet document.
func HandleWorksheet(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req WorksheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The caption's child list wins over a bare count when both are present.
	if len(req.Children) > 0 {
		req.NumChildren = len(req.Children)
	}

	result := calculator.CalculateWorksheet(req.WorksheetParams)
	resp := WorksheetResponse{Result: result}

	if req.RenderDocument {
		resp.Document = assembler.WorksheetDocument(report.WorksheetDocParams{
			County:             req.County,
			CustodialParent:    req.CustodialParent,
			NonCustodialParent: req.NonCustodialParent,
			Children:           req.Children,
			CustodialIncome:    req.CustodialIncome,
			NonCustodialIncome: req.NonCustodialIncome,
			ChildcareCost:      req.ChildcareCost,
			HealthInsurance:    req.HealthInsurance,
			EducationCost:      req.EducationCost,
		}, result)
	}

	fmt.Printf("[SUPPORT] Worksheet: combined=%.2f capped=%.2f total=%.2f\n",
		result.CombinedIncome, result.IncomeForCalc, result.TotalSupport)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
