package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"crm-intent-router/config"
	_ "crm-intent-router/docs" // Swagger docs
	"crm-intent-router/internal/httpserver"
	"crm-intent-router/internal/middleware"
	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router"
	"crm-intent-router/internal/router/rules"
	"crm-intent-router/internal/routing"
	"crm-intent-router/internal/routing/usecase"
	"crm-intent-router/pkg/crm"
	"crm-intent-router/pkg/log"
)

// @title       CRM Intent Router API
// @description Routes CRM utterances to one tool with validated arguments and dispatches them to CRM actions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting CRM Intent Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Routing engine
	ruleSet, err := loadRules(cfg.Router.RulesFile)
	if err != nil {
		logger.Error(ctx, "Failed to load rule set: ", err)
		return
	}

	engine, err := router.New(logger, router.Config{
		Rules:         ruleSet,
		CacheSize:     cfg.Router.CacheSize,
		DisableGuards: !cfg.Router.GuardsEnabled,
		Metrics:       router.NewMetrics(prometheus.DefaultRegisterer),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize router: ", err)
		return
	}
	logger.Infof(ctx, "Rule set v%d loaded, guards enabled: %v", ruleSet.Version, engine.GuardsEnabled())

	// 4. CRM client (optional in dry-run mode)
	var invoker crm.Invoker
	if cfg.CRM.Configured() {
		invoker, err = crm.New(ctx, crm.Config{
			BaseURL:      cfg.CRM.BaseURL,
			APIVersion:   cfg.CRM.APIVersion,
			Timeout:      cfg.CRM.Timeout,
			TokenURL:     cfg.CRM.TokenURL,
			ClientID:     cfg.CRM.ClientID,
			ClientSecret: cfg.CRM.ClientSecret,
			AccessToken:  cfg.CRM.AccessToken,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize CRM client: ", err)
			return
		}
		logger.Infof(ctx, "CRM client configured for %s", cfg.CRM.BaseURL)
	} else {
		logger.Warn(ctx, "CRM not configured: only dry runs will succeed")
	}
	logger.Infof(ctx, "Dry run: %v", cfg.CRM.DryRun)

	// 5. Routing use case
	uc := usecase.New(logger, engine, invoker, routing.Config{
		DryRun:  cfg.CRM.DryRun,
		Actions: toolActions(ctx, logger, cfg.CRM.Actions),
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RoutingUseCase: uc,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func loadRules(path string) (*rules.Set, error) {
	if path == "" {
		return rules.Default()
	}
	return rules.Load(path)
}

func toolActions(ctx context.Context, logger log.Logger, raw map[string]string) map[model.Tool]string {
	actions := make(map[model.Tool]string, len(raw))
	for name, action := range raw {
		tool, ok := model.ParseTool(name)
		if !ok || tool == model.ToolUnrecognized {
			logger.Warnf(ctx, "Ignoring crm action for unknown tool %q", name)
			continue
		}
		actions[tool] = action
	}
	return actions
}
