package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Client calls CRM custom actions over the REST API.
type Client struct {
	baseURL    string
	apiVersion string
	httpClient *http.Client
}

func newClient(ctx context.Context, cfg Config) *Client {
	base := cfg.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	// oauth2 reads the base transport from the context.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	var hc *http.Client
	if cfg.usesClientCredentials() {
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		hc = cc.Client(ctx)
	} else {
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		}))
	}

	hc.Timeout = cfg.Timeout
	if hc.Timeout == 0 {
		hc.Timeout = DefaultTimeout
	}

	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiVersion: version,
		httpClient: hc,
	}
}

// Invoke posts {"inputs":[inputs]} to the custom action endpoint.
func (c *Client) Invoke(ctx context.Context, action string, inputs map[string]any) (*Result, error) {
	if strings.TrimSpace(action) == "" {
		return nil, ErrEmptyAction
	}

	body, err := json.Marshal(actionRequest{Inputs: []map[string]any{inputs}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal action request: %w", err)
	}

	endpoint := fmt.Sprintf(actionPathFmt, c.baseURL, c.apiVersion, url.PathEscape(action))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call crm action %q: %w", action, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read crm response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %d: %s", ErrUnauthorized, resp.StatusCode, string(raw))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(raw))
	}

	return &Result{
		Action:     action,
		StatusCode: resp.StatusCode,
		Payload:    asJSON(raw),
	}, nil
}

// asJSON keeps a JSON body as-is and quotes anything else.
func asJSON(raw []byte) json.RawMessage {
	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	quoted, _ := json.Marshal(string(raw))
	return json.RawMessage(quoted)
}
