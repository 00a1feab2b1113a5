package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Config contiene la configuración del dashboard, leída de variables de entorno
type Config struct {
	Port                    string
	CoinGeckoBaseURL        string
	QuoteCurrency           string // Código en minúsculas, como lo espera CoinGecko
	TopN                    int
	HistoryDays             int
	HTTPTimeout             time.Duration
	SnapshotRefreshInterval time.Duration // 0 desactiva la recarga periódica
	CORSOrigins             []string
}

// Default devuelve la configuración por defecto
func Default() Config {
	return Config{
		Port:             "8080",
		CoinGeckoBaseURL: "https://api.coingecko.com/api/v3",
		QuoteCurrency:    "inr",
		TopN:             10,
		HistoryDays:      15,
		HTTPTimeout:      10 * time.Second,
		CORSOrigins:      []string{"http://localhost:3000"},
	}
}

// Load carga el archivo .env si existe y lee la configuración del entorno
func Load() (Config, error) {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv construye la configuración a partir de una función de búsqueda
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.CoinGeckoBaseURL = strings.TrimRight(v, "/")
	}
	if v := getenv("QUOTE_CURRENCY"); v != "" {
		cfg.QuoteCurrency = strings.ToLower(strings.TrimSpace(v))
	}
	if money.GetCurrency(strings.ToUpper(cfg.QuoteCurrency)) == nil {
		return Config{}, fmt.Errorf("QUOTE_CURRENCY %q no es una moneda conocida", cfg.QuoteCurrency)
	}

	var err error
	if cfg.TopN, err = positiveInt(getenv, "TOP_N", cfg.TopN); err != nil {
		return Config{}, err
	}
	if cfg.HistoryDays, err = positiveInt(getenv, "HISTORY_DAYS", cfg.HistoryDays); err != nil {
		return Config{}, err
	}

	if v := getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("HTTP_TIMEOUT inválido: %q", v)
		}
		cfg.HTTPTimeout = d
	}
	if v := getenv("SNAPSHOT_REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("SNAPSHOT_REFRESH_INTERVAL inválido: %q", v)
		}
		cfg.SnapshotRefreshInterval = d
	}

	if v := getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) == 0 {
			return Config{}, fmt.Errorf("CORS_ORIGINS no tiene orígenes válidos: %q", v)
		}
		cfg.CORSOrigins = origins
	}

	return cfg, nil
}

func positiveInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s debe ser un entero positivo: %q", key, v)
	}
	return n, nil
}
