package netsuite

import (
	"fmt"
	"os"
	"strings"
)

const placeholderAccountID = "DEMO_ACCOUNT"

// Config carries the NetSuite connection settings. It is built once at
// process start and injected into the client and signer; nothing in this
// package reads the environment after construction.
type Config struct {
	AccountID      string
	ConsumerKey    string
	ConsumerSecret string
	TokenID        string
	TokenSecret    string
	RoleID         string

	// ForceMock makes the client serve deterministic mock data regardless
	// of credentials (development mode).
	ForceMock bool
}

// ConfigFromEnv reads the NETSUITE_* environment variables.
//
// Recognized:
//   - NETSUITE_ACCOUNT_ID, NETSUITE_CONSUMER_KEY, NETSUITE_CONSUMER_SECRET,
//     NETSUITE_TOKEN_ID, NETSUITE_TOKEN_SECRET
//   - NETSUITE_ROLE (default "3")
//   - NETSUITE_MOCK (1/true/yes/on/mock forces mock data)
func ConfigFromEnv() Config {
	return Config{
		AccountID:      strings.TrimSpace(os.Getenv("NETSUITE_ACCOUNT_ID")),
		ConsumerKey:    strings.TrimSpace(os.Getenv("NETSUITE_CONSUMER_KEY")),
		ConsumerSecret: strings.TrimSpace(os.Getenv("NETSUITE_CONSUMER_SECRET")),
		TokenID:        strings.TrimSpace(os.Getenv("NETSUITE_TOKEN_ID")),
		TokenSecret:    strings.TrimSpace(os.Getenv("NETSUITE_TOKEN_SECRET")),
		RoleID:         getenvDefault("NETSUITE_ROLE", "3"),
		ForceMock:      isMockEnabled(),
	}
}

// Configured reports whether real NetSuite credentials are present.
func (c Config) Configured() bool {
	return c.AccountID != "" && c.AccountID != placeholderAccountID && c.ConsumerKey != ""
}

// SuiteQLURL is the account-scoped SuiteQL endpoint.
func (c Config) SuiteQLURL() string {
	return fmt.Sprintf("https://%s.suitetalk.api.netsuite.com/services/rest/query/v1/suiteql", c.AccountID)
}

func isMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NETSUITE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
