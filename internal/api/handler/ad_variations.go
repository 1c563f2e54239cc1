package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/project"
)

// PostAdVariation publica a variação nas contas informadas. Falhas por conta
// voltam em posting_results, não como erro da requisição.
func PostAdVariation(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PostAdVariation")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.PostAdVariationRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		variation, err := service.PostAdVariation(r.Context(), claims.UserID, pathParam(r, "id"), &req)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, variation)
	}
}

func UpdateAdVariationMetrics(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAdVariationMetrics")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var metrics domain.PerformanceMetrics
		if !decodeAndValidate(w, r, &metrics) {
			return
		}

		variation, err := service.UpdateAdVariationMetrics(r.Context(), claims.UserID, pathParam(r, "id"), metrics)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, variation)
	}
}
