package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
)

const (
	CronJobTypePostMetrics  = "post-metrics"
	CronJobTypeTokenRefresh = "token-refresh"
	CronJobTypeAll          = "all"
)

type PostMetricsSyncer interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

type TokenRefresher interface {
	TriggerManualRefresh(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices reúne os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	PostMetricsSync PostMetricsSyncer
	TokenRefresh    TokenRefresher
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := pathParam(r, "type")
		started := map[string]bool{}

		switch cronType {
		case CronJobTypePostMetrics:
			started[CronJobTypePostMetrics] = services.PostMetricsSync.TriggerManualSync(r.Context())
		case CronJobTypeTokenRefresh:
			started[CronJobTypeTokenRefresh] = services.TokenRefresh.TriggerManualRefresh(r.Context())
		case CronJobTypeAll:
			started[CronJobTypePostMetrics] = services.PostMetricsSync.TriggerManualSync(r.Context())
			started[CronJobTypeTokenRefresh] = services.TokenRefresh.TriggerManualRefresh(r.Context())
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: post-metrics, token-refresh, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job solicitada",
			"type":    cronType,
			"started": started,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		writeJSON(w, http.StatusOK, map[string]any{
			CronJobTypePostMetrics:  services.PostMetricsSync.GetStatus(),
			CronJobTypeTokenRefresh: services.TokenRefresh.GetStatus(),
		})
	}
}
