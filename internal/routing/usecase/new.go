package usecase

import (
	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router"
	"crm-intent-router/internal/routing"
	"crm-intent-router/pkg/crm"
	"crm-intent-router/pkg/log"
)

// implUseCase is the private implementation of routing.UseCase.
type implUseCase struct {
	l       log.Logger
	router  router.Router
	crm     crm.Invoker
	dryRun  bool
	actions map[model.Tool]string
}

var _ routing.UseCase = (*implUseCase)(nil)

// New creates a routing UseCase. invoker may be nil, in which case only dry runs succeed.
func New(l log.Logger, r router.Router, invoker crm.Invoker, cfg routing.Config) *implUseCase {
	actions := make(map[model.Tool]string, len(routing.DefaultActions))
	for tool, action := range routing.DefaultActions {
		actions[tool] = action
	}
	for tool, action := range cfg.Actions {
		if action != "" {
			actions[tool] = action
		}
	}

	return &implUseCase{
		l:       l,
		router:  r,
		crm:     invoker,
		dryRun:  cfg.DryRun,
		actions: actions,
	}
}
