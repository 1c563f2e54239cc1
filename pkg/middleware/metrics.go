package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/adcreative-api/pkg/metrics"
)

// Metrics registra contagem e duração das requisições usando o padrão da rota como label
func Metrics(method, routePath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.RecordHTTPRequest(method, routePath, lrw.statusCode, time.Since(startTime))
		})
	}
}
