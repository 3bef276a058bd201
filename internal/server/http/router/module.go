package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodorder/internal/metrics"
	"github.com/polkiloo/foodorder/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(m *metrics.Metrics) middleware.RequestObserver { return m }),
	fx.Provide(Setup),
)
