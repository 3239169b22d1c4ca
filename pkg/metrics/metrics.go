package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbWaitCount     *prometheus.GaugeVec
}

// New создает и регистрирует метрики в дефолтном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		dbOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbWaitCount: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_wait_total",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBStats публикует состояние connection pool
func (m *Metrics) SetDBStats(db string, stats sql.DBStats) {
	m.dbOpenConns.WithLabelValues(db).Set(float64(stats.OpenConnections))
	m.dbIdleConns.WithLabelValues(db).Set(float64(stats.Idle))
	m.dbInUseConns.WithLabelValues(db).Set(float64(stats.InUse))
	m.dbWaitCount.WithLabelValues(db).Set(float64(stats.WaitCount))
}
