package crm

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Config holds the connection settings for the CRM REST API.
// Either ClientID/ClientSecret/TokenURL or AccessToken must be set.
type Config struct {
	BaseURL    string
	APIVersion string
	Timeout    time.Duration

	// OAuth2 client-credentials flow.
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string

	// Static bearer token, used when client credentials are absent.
	AccessToken string

	// HTTPClient is the base transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

func (c Config) usesClientCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.TokenURL != ""
}

// Validate reports whether the config can reach the CRM.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrNotConfigured
	}
	if !c.usesClientCredentials() && c.AccessToken == "" {
		return ErrNotConfigured
	}
	return nil
}

// actionRequest is the body of a custom action invocation.
type actionRequest struct {
	Inputs []map[string]any `json:"inputs"`
}

// Result is the outcome of one action call. Payload is passed through untouched.
type Result struct {
	Action     string          `json:"action"`
	StatusCode int             `json:"status_code"`
	Payload    json.RawMessage `json:"payload"`
}
