package cli

import (
	"strconv"
	"strings"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/portfolio"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// RenderResult muestra en la terminal el resultado de una ejecución del dashboard
func RenderResult(res portfolio.Result, currency string) string {
	if res.Portfolio == nil {
		if res.Output.Summary == "" {
			return ""
		}
		return errorStyle.Render(res.Output.Summary)
	}

	var b strings.Builder
	b.WriteString(summaryStyle.Render(res.Output.Summary))
	b.WriteString("\n")

	rows := make([][]string, 0, res.Portfolio.Len())
	for _, entry := range res.Portfolio.Entries() {
		price, value := "-", "-"
		for _, a := range res.Valuation.PerAsset {
			if a.AssetID == entry.AssetID {
				price = portfolio.FormatAmount(a.Price, currency)
				value = portfolio.FormatAmount(a.Value, currency)
				break
			}
		}
		rows = append(rows, []string{
			portfolio.Capitalize(entry.AssetID),
			strconv.FormatFloat(entry.Quantity, 'f', -1, 64),
			price,
			value,
			strconv.Itoa(historyPoints(res.Series, entry.AssetID)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("Asset", "Quantity", "Price", "Value", "History").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	b.WriteString(t.Render())

	if len(res.Valuation.Unmatched) > 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Not in market snapshot: " + strings.Join(res.Valuation.Unmatched, ", ")))
	}

	return b.String()
}

func historyPoints(series []portfolio.AssetSeries, assetID string) int {
	for _, s := range series {
		if s.AssetID == assetID {
			return len(s.Prices)
		}
	}
	return 0
}
