package portfolio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	summaryPrefix = "Total Portfolio Value: "
	pieTitle      = "Portfolio Distribution by Cryptocurrencies"
)

// Colores para cada segmento del gráfico de torta
var pieColors = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40"}

// AssetSeries asocia un activo con su historial de precios
type AssetSeries struct {
	AssetID string
	Prices  models.HistoricalSeries
}

// BuildSummary arma el texto con el valor total del portafolio
func BuildSummary(total float64, currency string) string {
	return summaryPrefix + FormatAmount(total, currency)
}

// FormatAmount formatea un monto con el símbolo de la moneda como prefijo fijo,
// separador de miles y exactamente dos decimales, p. ej. ₹1,500,000.00 o ₹-5.00.
// Los montos no finitos se muestran como ₹inf, ₹-inf o ₹nan.
func FormatAmount(amount float64, currency string) string {
	symbol, thousand, decimalSep := strings.ToUpper(currency)+" ", ",", "."
	if cur := money.GetCurrency(strings.ToUpper(currency)); cur != nil {
		symbol, thousand, decimalSep = cur.Grapheme, cur.Thousand, cur.Decimal
	}

	switch {
	case math.IsNaN(amount):
		return symbol + "nan"
	case math.IsInf(amount, 1):
		return symbol + "inf"
	case math.IsInf(amount, -1):
		return symbol + "-inf"
	}

	// FormatFloat redondea el valor binario exacto, igual que {:,.2f}
	rounded := strconv.FormatFloat(amount, 'f', 2, 64)
	dec, err := decimal.NewFromString(rounded)
	if err != nil {
		return symbol + rounded
	}

	sign := ""
	if strings.HasPrefix(rounded, "-") {
		sign = "-"
	}
	// La parte entera puede superar int64, por eso se agrupa como texto
	integer := dec.Abs().Truncate(0).String()
	fraction := rounded[len(rounded)-2:]

	return symbol + sign + groupThousands(integer, thousand) + decimalSep + fraction
}

// groupThousands inserta sep cada tres dígitos desde la derecha
func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// BuildPieChart arma el gráfico de distribución, un segmento por activo valuado
func BuildPieChart(valuation models.ValuationResult) models.Figure {
	if len(valuation.PerAsset) == 0 {
		return models.Figure{}
	}

	labels := make([]string, 0, len(valuation.PerAsset))
	values := make([]float64, 0, len(valuation.PerAsset))
	colors := make([]string, 0, len(valuation.PerAsset))
	for i, asset := range valuation.PerAsset {
		labels = append(labels, Capitalize(asset.AssetID))
		values = append(values, asset.Value)
		colors = append(colors, pieColors[i%len(pieColors)])
	}

	return models.Figure{
		Data: []models.Trace{{
			Type:   "pie",
			Labels: labels,
			Values: values,
			Marker: &models.Marker{Colors: colors},
		}},
		Layout: &models.Layout{Title: models.Title{Text: pieTitle}},
	}
}

// BuildLineChart arma el gráfico de precios históricos, una serie por activo con datos
func BuildLineChart(series []AssetSeries, days int) models.Figure {
	var traces []models.Trace
	for _, s := range series {
		if len(s.Prices) == 0 {
			continue
		}
		x := make([]int, len(s.Prices))
		for i := range s.Prices {
			x[i] = i + 1
		}
		y := make([]float64, len(s.Prices))
		copy(y, s.Prices)

		traces = append(traces, models.Trace{
			Type: "scatter",
			Mode: "lines",
			Name: Capitalize(s.AssetID),
			X:    x,
			Y:    y,
		})
	}

	if len(traces) == 0 {
		return models.Figure{}
	}

	return models.Figure{
		Data: traces,
		Layout: &models.Layout{
			Title: models.Title{Text: fmt.Sprintf("Historical Price Trends (Past %d Days)", days)},
			XAxis: &models.Axis{Title: models.Title{Text: "Day"}},
			YAxis: &models.Axis{Title: models.Title{Text: "Price"}},
		},
	}
}

// Capitalize pone en mayúscula la primera letra y el resto en minúscula
func Capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
