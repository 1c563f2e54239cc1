package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/billing"
)

func ListPlans(service billing.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListPlans")

		writeJSON(w, http.StatusOK, service.ListPlans())
	}
}

func CreateCheckoutSession(service billing.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCheckoutSession")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.CheckoutRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		session, err := service.CreateCheckoutSession(r.Context(), claims.UserID, &req)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	}
}

func CreatePortalSession(service billing.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePortalSession")

		var req domain.PortalRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		session, err := service.CreatePortalSession(r.Context(), req.CustomerID, req.ReturnURL)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	}
}

func GetSubscription(service billing.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSubscription")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		subscription, err := service.GetSubscription(r.Context(), claims.UserID, pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, subscription)
	}
}

func CancelSubscription(service billing.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CancelSubscription")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		subscription, err := service.CancelSubscription(r.Context(), claims.UserID, pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, subscription)
	}
}

func UpdateSubscription(service billing.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSubscription")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.UpdateSubscriptionRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		subscription, err := service.UpdateSubscription(r.Context(), claims.UserID, pathParam(r, "id"), req.PriceID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, subscription)
	}
}

func GetUsageStats(service billing.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetUsageStats")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		stats, err := service.GetUsageStats(r.Context(), claims.UserID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func CheckPlanLimits(service billing.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckPlanLimits")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.PlanLimitRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		check, err := service.CheckPlanLimits(r.Context(), claims.UserID, req.Action)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, check)
	}
}
