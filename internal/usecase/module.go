package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodorder/internal/metrics"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	NewMenuUseCase,
	NewStaffUseCase,
	func(m *metrics.Metrics) OrderMetrics { return m },
)
