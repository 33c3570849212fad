package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	apianalysis "familylaw_toolkit/pkg/api/analysis"
	apiintake "familylaw_toolkit/pkg/api/intake"
	apireport "familylaw_toolkit/pkg/api/report"
	apisupport "familylaw_toolkit/pkg/api/support"
	"familylaw_toolkit/pkg/core/assistant"
	"familylaw_toolkit/pkg/core/consistency"
	"familylaw_toolkit/pkg/core/report"
	"familylaw_toolkit/pkg/core/store"
	"familylaw_toolkit/pkg/core/support"
	"familylaw_toolkit/pkg/core/taxreturn"
)

// appConfig is the on-disk shape of config/guidelines.yaml. Guideline
// constants are legislated values revised periodically, so they live in
// configuration rather than code.
type appConfig struct {
	TaxYear int `yaml:"tax_year"`

	Firm struct {
		Name    string `yaml:"name"`
		Address string `yaml:"address"`
		Phone   string `yaml:"phone"`
	} `yaml:"firm"`

	Support       support.Config       `yaml:"support"`
	Consistency   consistency.Config   `yaml:"consistency"`
	TaxThresholds taxreturn.Thresholds `yaml:"tax_thresholds"`
}

func loadConfig(path string) appConfig {
	var cfg appConfig
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("[WARNING] Failed to read %s: %v\n", path, err)
		fmt.Println("  Falling back to built-in guideline constants")
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Printf("[WARNING] Failed to parse %s: %v\n", path, err)
	}
	return cfg
}

func main() {
	godotenv.Load()

	cfg := loadConfig("config/guidelines.yaml")
	if cfg.TaxYear == 0 {
		cfg.TaxYear = 2024
	}

	// The constructors substitute defaults when the config file left a
	// section empty.
	calculator := support.NewCalculator(cfg.Support)
	analyzer := consistency.NewAnalyzer(cfg.Consistency)
	taxAnalyzer := taxreturn.NewAnalyzer(cfg.TaxYear, cfg.TaxThresholds)
	assembler := report.NewAssembler(cfg.Firm.Name, cfg.Firm.Address, cfg.Firm.Phone)

	// Postgres is optional; without DATABASE_URL the archive falls back to
	// the local file cache.
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] Database unavailable, using file archive: %v\n", err)
	} else {
		defer store.Close()
	}
	archive := store.NewArchiveCache(store.GetPool(), "")

	var narrator *assistant.Narrator
	if os.Getenv("GEMINI_API_KEY") != "" {
		narrator = assistant.NewNarrator(&assistant.GeminiProvider{})
		fmt.Println("[ASSISTANT] Narrative generation enabled")
	}

	apisupport.InitHandler(calculator, assembler)
	http.HandleFunc("/api/support/child-support", apisupport.HandleChildSupport)
	http.HandleFunc("/api/support/maintenance", apisupport.HandleMaintenance)
	http.HandleFunc("/api/support/worksheet", apisupport.HandleWorksheet)

	apianalysis.InitHandler(analyzer, taxAnalyzer, archive)
	http.HandleFunc("/api/analysis/compare", apianalysis.HandleCompare)
	http.HandleFunc("/api/analysis/tax-return", apianalysis.HandleTaxReturn)

	apiintake.InitHandler(store.NewDocumentRepo(store.GetPool()))
	http.HandleFunc("/api/intake/fields", apiintake.HandleExtractFields)
	http.HandleFunc("/api/intake/statement-html", apiintake.HandleStatementHTML)
	http.HandleFunc("/api/intake/document", apiintake.HandleParseDocument)
	http.HandleFunc("/api/intake/case-documents", apiintake.HandleCaseDocuments)

	apireport.InitHandler(assembler, calculator, analyzer, taxAnalyzer, archive, narrator)
	http.HandleFunc("/api/report/full", apireport.HandleFullReport)
	http.HandleFunc("/api/report/support", apireport.HandleSupportReport)
	http.HandleFunc("/api/report/archive", apireport.HandleArchive)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - POST /api/support/child-support")
	fmt.Println("  - POST /api/support/maintenance")
	fmt.Println("  - POST /api/support/worksheet")
	fmt.Println("  - POST /api/analysis/compare")
	fmt.Println("  - POST /api/analysis/tax-return")
	fmt.Println("  - POST /api/intake/fields")
	fmt.Println("  - POST /api/intake/statement-html")
	fmt.Println("  - POST /api/intake/document")
	fmt.Println("  - POST /api/intake/case-documents")
	fmt.Println("  - POST /api/report/full")
	fmt.Println("  - POST /api/report/support")
	fmt.Println("  - POST /api/report/archive")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
