package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTPServer.Port)
	}
	if !cfg.CRM.DryRun {
		t.Errorf("dry run must default to true")
	}
	if cfg.CRM.APIVersion != "v58.0" || cfg.CRM.Timeout != 30*time.Second {
		t.Errorf("unexpected crm defaults: %+v", cfg.CRM)
	}
	if !cfg.Router.GuardsEnabled || cfg.Router.CacheSize != 1024 {
		t.Errorf("unexpected router defaults: %+v", cfg.Router)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROUTER_CACHE_SIZE", "0")
	t.Setenv("ROUTER_GUARDS_ENABLED", "false")
	t.Setenv("CRM_BASE_URL", "https://crm.example.com")
	t.Setenv("CRM_ACCESS_TOKEN", "token")
	t.Setenv("DRY_RUN", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Router.CacheSize != 0 || cfg.Router.GuardsEnabled {
		t.Errorf("env overrides not applied: %+v", cfg.Router)
	}
	if cfg.CRM.DryRun {
		t.Errorf("DRY_RUN=false must turn live mode on")
	}
	if !cfg.CRM.Configured() {
		t.Errorf("expected crm to be configured")
	}
}

func TestLoad_LiveWithoutCRM(t *testing.T) {
	t.Setenv("CRM_DRY_RUN", "false")

	if _, err := Load(); err == nil {
		t.Errorf("expected error when live mode has no crm settings")
	}
}

func TestCRMConfig_Configured(t *testing.T) {
	tcs := map[string]struct {
		cfg  CRMConfig
		want bool
	}{
		"empty":              {cfg: CRMConfig{}, want: false},
		"base url only":      {cfg: CRMConfig{BaseURL: "https://crm"}, want: false},
		"static token":       {cfg: CRMConfig{BaseURL: "https://crm", AccessToken: "t"}, want: true},
		"client credentials": {cfg: CRMConfig{BaseURL: "https://crm", ClientID: "id", ClientSecret: "s", TokenURL: "https://crm/token"}, want: true},
		"missing token url":  {cfg: CRMConfig{BaseURL: "https://crm", ClientID: "id", ClientSecret: "s"}, want: false},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if got := tc.cfg.Configured(); got != tc.want {
				t.Errorf("Configured() = %v, want %v", got, tc.want)
			}
		})
	}
}
