package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/authenticating"
)

func GetProfile(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetProfile")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := service.FetchProfile(r.Context(), claims.UserID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

func UpdateProfile(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProfile")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.UpdateProfileRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		profile, err := service.UpdateProfile(r.Context(), claims.ID, &req)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// SetSubscription grava a assinatura informada na sessão do usuário
func SetSubscription(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetSubscription")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var subscription domain.Subscription
		if !decodeAndValidate(w, r, &subscription) {
			return
		}
		subscription.UserID = claims.UserID

		session, err := service.SetSubscription(r.Context(), claims.ID, &subscription)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	}
}
