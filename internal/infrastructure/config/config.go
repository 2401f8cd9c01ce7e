package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	ProviderMangoPay    = "mangopay"
	ProviderMercadoPago = "mercadopago"

	defaultMangoPayBase = "https://api.sandbox.mangopay.com"
)

// Config is everything the service reads from the environment. A .env file
// is loaded first by godotenv/autoload in main.

type Config struct {
	Port string

	LinkStore        string
	IdentityProvider string
	MockProvider     bool

	MangoPayClientID       string
	MangoPayKey            string
	MangoPayBaseURL        string
	MangoPayTimeout        time.Duration
	DefaultCurrency        string
	MandateReturnURL       string
	MercadoPagoAccessToken string
	IdentityLinksTable     string
	PostgresDSN            string
	AutoMigrate            bool
	BillablePersonTypes    string
	DefaultPersonType      string
}

// FromEnv reads Config.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - LINK_STORE: dynamodb | postgres | memory (default: dynamodb)
//   - IDENTITY_PROVIDER: mangopay | mercadopago (default: mangopay)
//   - PAYMENT_GATEWAY_MOCK: serve every provider port from memory
//   - MANGOPAY_ID, MANGOPAY_KEY, MANGOPAY_BASE, MANGOPAY_TIMEOUT (default: 30s)
//   - MANGOPAY_DEFAULT_CURRENCY (default: EUR)
//   - MANDATE_RETURN_URL
//   - MERCADOPAGO_ACCESS_TOKEN
//   - IDENTITY_LINKS_TABLE: DynamoDB table (default: identity_links)
//   - POSTGRES_DSN
//   - DB_AUTOMIGRATE: create the link table/schema at startup (default: true)
//   - BILLABLE_PERSON_TYPES ("Organization=LEGAL,User=NATURAL"), DEFAULT_PERSON_TYPE (default: LEGAL)
func FromEnv() (Config, error) {
	timeout, err := time.ParseDuration(getenvDefault("MANGOPAY_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid MANGOPAY_TIMEOUT: %w", err)
	}
	autoMigrate, err := strconv.ParseBool(getenvDefault("DB_AUTOMIGRATE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_AUTOMIGRATE: %w", err)
	}

	cfg := Config{
		Port:                   getenvDefault("PORT", "8080"),
		LinkStore:              strings.ToLower(getenvDefault("LINK_STORE", StoreDynamoDB)),
		IdentityProvider:       strings.ToLower(getenvDefault("IDENTITY_PROVIDER", ProviderMangoPay)),
		MockProvider:           envFlag("PAYMENT_GATEWAY_MOCK") || envFlag("MANGOPAY_MOCK"),
		MangoPayClientID:       os.Getenv("MANGOPAY_ID"),
		MangoPayKey:            os.Getenv("MANGOPAY_KEY"),
		MangoPayBaseURL:        strings.TrimRight(getenvDefault("MANGOPAY_BASE", defaultMangoPayBase), "/"),
		MangoPayTimeout:        timeout,
		DefaultCurrency:        strings.ToUpper(getenvDefault("MANGOPAY_DEFAULT_CURRENCY", "EUR")),
		MandateReturnURL:       os.Getenv("MANDATE_RETURN_URL"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		IdentityLinksTable:     getenvDefault("IDENTITY_LINKS_TABLE", "identity_links"),
		PostgresDSN:            os.Getenv("POSTGRES_DSN"),
		AutoMigrate:            autoMigrate,
		BillablePersonTypes:    os.Getenv("BILLABLE_PERSON_TYPES"),
		DefaultPersonType:      strings.ToUpper(getenvDefault("DEFAULT_PERSON_TYPE", "LEGAL")),
	}

	switch cfg.LinkStore {
	case StoreDynamoDB, StorePostgres, StoreMemory:
	default:
		return Config{}, fmt.Errorf("invalid LINK_STORE %q", cfg.LinkStore)
	}
	if cfg.LinkStore == StorePostgres && cfg.PostgresDSN == "" {
		return Config{}, fmt.Errorf("LINK_STORE=postgres requires POSTGRES_DSN")
	}
	switch cfg.IdentityProvider {
	case ProviderMangoPay, ProviderMercadoPago:
	default:
		return Config{}, fmt.Errorf("invalid IDENTITY_PROVIDER %q", cfg.IdentityProvider)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envFlag(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
