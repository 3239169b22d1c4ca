package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// HTTPMetricsCollector интерфейс сборщика HTTP метрик
type HTTPMetricsCollector interface {
	ObserveHTTPRequest(method, path, status string, seconds float64)
}

// statusRecorder перехватывает статус ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics записывает длительность и статус каждого HTTP запроса
// В качестве path используется шаблон маршрута, а не конкретный URL,
// чтобы не раздувать кардинальность метрик
func Metrics(collector HTTPMetricsCollector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}

			collector.ObserveHTTPRequest(r.Method, path, strconv.Itoa(rec.status), time.Since(start).Seconds())
		})
	}
}
