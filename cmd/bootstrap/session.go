package bootstrap

import (
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionTokenService,
	),
)

func NewSessionTokenService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Session.Secret, cfg.Session.TokenDuration)
}
