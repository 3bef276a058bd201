package sms

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/foodorder/internal/config"
)

// Module exposes the notifier to the fx graph.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) (Notifier, error) {
	cfg := p.Config.SMS
	if !cfg.Enabled() {
		p.Logger.Warn("sms credentials not set, notifications disabled")
		return NewDisabled(p.Logger), nil
	}
	client, err := NewTwilioClient(cfg.BaseURL, cfg.AccountSID, cfg.AuthToken, cfg.FromNumber, p.Logger)
	if err != nil {
		return nil, err
	}
	return NewSMSNotifier(client, cfg.DefaultCountryCode, p.Logger), nil
}
