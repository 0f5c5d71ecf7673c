package tenant

import (
	"github.com/ambienthq/ambient/internal/tenant/repository"
	"github.com/ambienthq/ambient/internal/tenant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tenant.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewResolver),
)
