package support

import (
	"math"
	"testing"
)

const tol = 0.005

func TestCSSAPercentageTable(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	expected := map[int]float64{1: 0.17, 2: 0.25, 3: 0.29, 4: 0.31, 5: 0.35, 6: 0.35, 9: 0.35}
	for numChildren, want := range expected {
		res := calc.CalculateChildSupport(ChildSupportParams{
			PayerIncome: 100000,
			PayeeIncome: 50000,
			NumChildren: numChildren,
		})
		if res.CSSAPercentage != want {
			t.Errorf("%d children: expected percentage %f, got %f", numChildren, want, res.CSSAPercentage)
		}
	}
}

func TestChildSupportExample(t *testing.T) {
	// Worked example: payer 175k, payee 65k, 2 children, 6k health, 18k childcare.
	calc := NewCalculator(DefaultConfig())

	res := calc.CalculateChildSupport(ChildSupportParams{
		PayerIncome:         175000,
		PayeeIncome:         65000,
		NumChildren:         2,
		HealthInsuranceCost: 6000,
		ChildcareCost:       18000,
	})

	if res.CombinedParentalIncome != 240000 {
		t.Errorf("Expected combined income 240000, got %f", res.CombinedParentalIncome)
	}
	if res.CSSAPercentage != 0.25 {
		t.Errorf("Expected percentage 0.25, got %f", res.CSSAPercentage)
	}
	if math.Abs(res.BasicSupportAmount-60000.00) > tol {
		t.Errorf("Expected basic support 60000.00, got %f", res.BasicSupportAmount)
	}
	// payer share = 175000/240000 = 0.729166..
	if math.Abs(res.PayerIncomeShare-72.9) > tol {
		t.Errorf("Expected payer share 72.9, got %f", res.PayerIncomeShare)
	}
	if math.Abs(res.PayerObligation-43750.00) > tol {
		t.Errorf("Expected payer obligation 43750.00, got %f", res.PayerObligation)
	}
	// Add-ons: 24000 * 175/240 = 17500.00 exactly.
	addOnTotal := res.AddOns.HealthInsurance + res.AddOns.Childcare + res.AddOns.Education
	if math.Abs(addOnTotal-17500.00) > tol {
		t.Errorf("Expected add-on total 17500.00, got %f", addOnTotal)
	}
	if math.Abs(res.TotalObligation-61250.00) > tol {
		t.Errorf("Expected total obligation 61250.00, got %f", res.TotalObligation)
	}
}

func TestProRataInvariant(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	incomes := []struct{ payer, payee float64 }{
		{120000, 40000},
		{55000, 55000},
		{200000, 0},
		{37500.50, 82199.99},
	}

	for _, in := range incomes {
		res := calc.CalculateChildSupport(ChildSupportParams{
			PayerIncome: in.payer,
			PayeeIncome: in.payee,
			NumChildren: 3,
		})
		// payer + payee obligations reconstruct the basic support amount
		// (before any special-needs adjustment).
		sum := res.PayerObligation + res.PayeeObligation
		if math.Abs(sum-res.BasicSupportAmount) > 0.011 { // rounding to cents on each side
			t.Errorf("payer %f + payee %f != basic %f", res.PayerObligation, res.PayeeObligation, res.BasicSupportAmount)
		}
	}
}

func TestSpecialNeedsAppliesToTotalOnly(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	base := ChildSupportParams{
		PayerIncome:         175000,
		PayeeIncome:         65000,
		NumChildren:         2,
		HealthInsuranceCost: 6000,
		ChildcareCost:       18000,
	}
	plain := calc.CalculateChildSupport(base)

	base.SpecialNeeds = true
	adjusted := calc.CalculateChildSupport(base)

	if math.Abs(adjusted.TotalObligation-plain.TotalObligation*1.20) > 0.011 {
		t.Errorf("Expected total %f, got %f", plain.TotalObligation*1.20, adjusted.TotalObligation)
	}
	// The increase does not touch the other components.
	if adjusted.BasicSupportAmount != plain.BasicSupportAmount {
		t.Error("Special needs must not change basic support amount")
	}
	if adjusted.PayerObligation != plain.PayerObligation {
		t.Error("Special needs must not change payer obligation")
	}
	if adjusted.PayeeObligation != plain.PayeeObligation {
		t.Error("Special needs must not change payee obligation")
	}
}

func TestZeroCombinedIncomeShares(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	res := calc.CalculateChildSupport(ChildSupportParams{NumChildren: 1})
	if res.PayerIncomeShare != 50.0 {
		t.Errorf("Expected 50/50 split at zero combined income, got %f", res.PayerIncomeShare)
	}
	if res.TotalObligation != 0 {
		t.Errorf("Expected zero obligation at zero income, got %f", res.TotalObligation)
	}
}

func TestMaintenanceExample(t *testing.T) {
	// payer 175k, payee 65k, 15-year marriage.
	calc := NewCalculator(DefaultConfig())

	res := calc.CalculateMaintenance(MaintenanceParams{
		PayerIncome:   175000,
		PayeeIncome:   65000,
		DurationYears: 15,
	})

	// 175000*0.30 - 65000*0.40 = 52500 - 26000 = 26500.
	// 40% cap: 26500 + 65000 = 91500 < 96000, so untouched.
	if math.Abs(res.MaintenanceAmount-26500.00) > tol {
		t.Errorf("Expected 26500.00, got %f", res.MaintenanceAmount)
	}
	if res.Duration != "180 months" {
		t.Errorf("Expected duration '180 months', got %q", res.Duration)
	}
	if res.IncomeCapApplied {
		t.Error("Cap should not be flagged below 203000")
	}
	if res.PayerIncomeUsed != 175000 || res.PayeeIncomeUsed != 65000 {
		t.Errorf("Capped incomes wrong: %f / %f", res.PayerIncomeUsed, res.PayeeIncomeUsed)
	}
}

func TestMaintenanceNonNegative(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	pairs := []struct{ payer, payee float64 }{
		{50000, 150000}, // payee out-earns payer
		{0, 0},
		{40000, 40000},
	}
	for _, p := range pairs {
		res := calc.CalculateMaintenance(MaintenanceParams{PayerIncome: p.payer, PayeeIncome: p.payee, DurationYears: 10})
		if res.MaintenanceAmount < 0 {
			t.Errorf("Negative maintenance for payer=%f payee=%f: %f", p.payer, p.payee, res.MaintenanceAmount)
		}
	}
}

func TestMaintenanceFortyPercentCeiling(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	// payer 100k, payee 60k: raw = 30000 - 24000 = 6000, but
	// 6000 + 60000 > 0.40*160000 = 64000, so reduced to 64000 - 60000 = 4000.
	res := calc.CalculateMaintenance(MaintenanceParams{PayerIncome: 100000, PayeeIncome: 60000, DurationYears: 5})
	if math.Abs(res.MaintenanceAmount-4000.00) > tol {
		t.Errorf("Expected ceiling-reduced amount 4000.00, got %f", res.MaintenanceAmount)
	}
}

func TestMaintenanceIncomeCap(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	res := calc.CalculateMaintenance(MaintenanceParams{PayerIncome: 250000, PayeeIncome: 50000, DurationYears: 10})
	if !res.IncomeCapApplied {
		t.Error("Expected income_cap_applied for payer above cap")
	}
	if res.PayerIncomeUsed != 203000 {
		t.Errorf("Expected capped payer income 203000, got %f", res.PayerIncomeUsed)
	}

	// Boundary: exactly at the cap is not "applied".
	atCap := calc.CalculateMaintenance(MaintenanceParams{PayerIncome: 203000, PayeeIncome: 50000, DurationYears: 10})
	if atCap.IncomeCapApplied {
		t.Error("Cap flag must compare with strict > against the uncapped input")
	}
}

func TestMaintenanceDurationBands(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	cases := []struct {
		years int
		want  string
	}{
		{10, "120 months"}, // <=15 band maps years 1:1
		{15, "180 months"},
		{16, "57 months"},  // int(16*0.30*12)
		{25, "120 months"}, // int(25*0.40*12)
		{35, "210 months"}, // int(35*0.50*12)
	}
	for _, c := range cases {
		res := calc.CalculateMaintenance(MaintenanceParams{PayerIncome: 100000, PayeeIncome: 20000, DurationYears: c.years})
		if res.Duration != c.want {
			t.Errorf("%d years: expected %q, got %q", c.years, c.want, res.Duration)
		}
	}
}

func TestPendenteLiteDuration(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	res := calc.CalculateMaintenance(MaintenanceParams{PayerIncome: 100000, PayeeIncome: 20000, DurationYears: 10, PendenteLite: true})
	if res.Duration != "Case duration" {
		t.Errorf("Expected 'Case duration' for pendente lite, got %q", res.Duration)
	}
}

func TestWorksheetAppliesIncomeCap(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	res := calc.CalculateWorksheet(WorksheetParams{
		CustodialIncome:    65000,
		NonCustodialIncome: 175000,
		NumChildren:        2,
		ChildcareCost:      18000,
		HealthInsurance:    6000,
	})

	if res.IncomeForCalc != 183000 {
		t.Errorf("Expected income for calc 183000, got %f", res.IncomeForCalc)
	}
	// 183000 * 0.25 = 45750
	if math.Abs(res.BasicSupport-45750.00) > tol {
		t.Errorf("Expected basic support 45750.00, got %f", res.BasicSupport)
	}
	// NCP share = 175/240; 45750 * 0.7291667 = 33359.375 -> 33359.38
	if math.Abs(res.NCPBasicSupport-33359.38) > tol {
		t.Errorf("Expected NCP basic 33359.38, got %f", res.NCPBasicSupport)
	}
	if math.Abs(res.NCPAddOns-17500.00) > tol {
		t.Errorf("Expected NCP add-ons 17500.00, got %f", res.NCPAddOns)
	}
	if math.Abs(res.AboveCapIncome-57000.00) > tol {
		t.Errorf("Expected above-cap income 57000.00, got %f", res.AboveCapIncome)
	}
}
