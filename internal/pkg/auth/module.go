package auth

import (
	"github.com/polkiloo/foodorder/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
	fx.Provide(newStaffGate),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.SecretKey, Options{})
}

type gateParams struct {
	fx.In

	Config *config.Config
	Hasher PasswordHasher
}

func newStaffGate(p gateParams) (*StaffGate, error) {
	return NewStaffGate(p.Hasher, p.Config.StaffPassword)
}
