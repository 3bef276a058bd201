package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodorder/internal/adapter/sms"
	"github.com/polkiloo/foodorder/internal/app"
	"github.com/polkiloo/foodorder/internal/config"
	"github.com/polkiloo/foodorder/internal/logger"
	"github.com/polkiloo/foodorder/internal/metrics"
	"github.com/polkiloo/foodorder/internal/pkg/auth"
	"github.com/polkiloo/foodorder/internal/server/http/handlers"
	"github.com/polkiloo/foodorder/internal/server/http/router"
	"github.com/polkiloo/foodorder/internal/storage/postgres"
	"github.com/polkiloo/foodorder/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		sms.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.OrderingFacade) handlers.OrderingFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
