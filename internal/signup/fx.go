package signup

import (
	"github.com/ambienthq/ambient/internal/auth/password"
	"go.uber.org/fx"
)

var Module = fx.Module("signup.service",
	fx.Provide(password.NewHasher),
	fx.Provide(NewService),
)
