package portfolio

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/AgusMolinaCode/CryptoDashboard.git/internal/models"
)

// Parse convierte un texto "nombre:cantidad, nombre:cantidad" en un portafolio.
// Si cualquier entrada es inválida falla por completo y no devuelve un portafolio parcial.
func Parse(input string) (*models.Portfolio, error) {
	p := models.NewPortfolio()

	for _, entry := range strings.Split(input, ",") {
		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q no tiene la forma nombre:cantidad", models.ErrInvalidPortfolioFormat, entry)
		}

		name := strings.ToLower(strings.TrimSpace(parts[0]))
		if name == "" {
			return nil, fmt.Errorf("%w: %q no tiene nombre", models.ErrInvalidPortfolioFormat, entry)
		}

		raw := strings.TrimSpace(parts[1])
		if isHexLiteral(raw) {
			return nil, fmt.Errorf("%w: cantidad inválida en %q", models.ErrInvalidPortfolioFormat, entry)
		}
		quantity, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
			return nil, fmt.Errorf("%w: cantidad inválida en %q", models.ErrInvalidPortfolioFormat, entry)
		}

		p.Set(name, quantity)
	}

	return p, nil
}

// isHexLiteral detecta cantidades hexadecimales como 0x1p-2, que ParseFloat acepta
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}
