package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReturnsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pallet_returns_created_total",
		Help: "Total number of return requests successfully created.",
	})

	ReturnsUpdatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pallet_returns_updated_total",
		Help: "Total number of return requests successfully updated, by resulting status.",
	},
		[]string{"status"},
	)

	ReturnsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pallet_returns_deleted_total",
		Help: "Total number of return requests successfully deleted.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pallet_returns_operation_errors_total",
		Help: "Total number of internal errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	DashboardClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pallet_returns_dashboard_clients",
		Help: "Current number of dashboards connected over websocket.",
	})
)
