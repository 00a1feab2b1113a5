package cli

import (
	"strings"
	"testing"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"
	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/portfolio"
)

func TestRenderResult(t *testing.T) {
	p, err := portfolio.Parse("bitcoin:0.5, dogecoin:10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res := portfolio.Result{
		Output:    models.DashboardOutput{Summary: "Total Portfolio Value: ₹1,500,000.00"},
		Portfolio: p,
		Valuation: models.ValuationResult{
			PerAsset:  []models.AssetValue{{AssetID: "bitcoin", Quantity: 0.5, Price: 3000000, Value: 1500000}},
			Total:     1500000,
			Unmatched: []string{"dogecoin"},
		},
		Series: []portfolio.AssetSeries{{AssetID: "bitcoin", Prices: models.HistoricalSeries{1, 2, 3}}},
	}

	out := RenderResult(res, "inr")
	for _, want := range []string{"1,500,000.00", "Bitcoin", "Dogecoin", "₹3,000,000.00", "Not in market snapshot: dogecoin"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderResultInvalidAndNoOp(t *testing.T) {
	invalid := portfolio.Result{Output: models.DashboardOutput{Summary: models.InvalidPortfolioMessage}}
	if out := RenderResult(invalid, "inr"); !strings.Contains(out, "Invalid input format") {
		t.Fatalf("unexpected output: %q", out)
	}
	if out := RenderResult(portfolio.Result{}, "inr"); out != "" {
		t.Fatalf("expected empty output for no-op, got %q", out)
	}
}
