package app

import (
	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/infrastructure/auth"
)

func (a *application) InitJWTService() auth.JWTService {
	cfg := &config.JWTConfig{
		Secret: a.config.JWT.Secret,
		Expiry: a.config.JWT.Expiry,
	}
	return auth.NewJWTService(cfg)
}
