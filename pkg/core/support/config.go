package support

// Config carries the legislated guideline constants. These are revised
// periodically by the state, so they are loaded from configuration rather
// than compiled in; DefaultConfig reflects the values current for 2024.
type Config struct {
	// CSSA percentages of combined parental income by number of children.
	// Five or more children use the 5 entry.
	CSSAPercentages map[int]float64 `yaml:"cssa_percentages"`

	// Income cap for the maintenance guideline formula (DRL 236).
	MaintenanceCap float64 `yaml:"maintenance_cap"`

	// Maintenance formula rates: payer rate minus payee rate.
	MaintenancePayerRate float64 `yaml:"maintenance_payer_rate"`
	MaintenancePayeeRate float64 `yaml:"maintenance_payee_rate"`

	// Multiplier applied to the total obligation when a child has
	// special needs.
	SpecialNeedsMultiplier float64 `yaml:"special_needs_multiplier"`

	// Combined-income cap used by the CSSA worksheet calculation. The basic
	// child support calculation intentionally does not apply this cap; the
	// two calculations evolved separately and are kept separate.
	WorksheetIncomeCap float64 `yaml:"worksheet_income_cap"`
}

// DefaultConfig returns the 2024 guideline constants.
func DefaultConfig() Config {
	return Config{
		CSSAPercentages: map[int]float64{
			1: 0.17,
			2: 0.25,
			3: 0.29,
			4: 0.31,
			5: 0.35,
		},
		MaintenanceCap:         203000,
		MaintenancePayerRate:   0.30,
		MaintenancePayeeRate:   0.40,
		SpecialNeedsMultiplier: 1.20,
		WorksheetIncomeCap:     183000,
	}
}
