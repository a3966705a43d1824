package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Engine Metrics
var (
	ItemsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsAdded,
			Help: HelpTextItemsAdded,
		},
	)

	ItemsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsRemoved,
			Help: HelpTextItemsRemoved,
		},
	)

	EquipOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEquipOperations,
			Help: HelpTextEquipOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	CapacityRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCapacityRejections,
			Help: HelpTextCapacityRejections,
		},
	)

	InventoriesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventoriesCreated,
			Help: HelpTextInventoriesCreated,
		},
	)
)
