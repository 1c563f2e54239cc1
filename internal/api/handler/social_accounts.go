package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/account"
	"github.com/vfg2006/adcreative-api/internal/usecases/authenticating"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
)

func ListSocialAccounts(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListSocialAccounts")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		accounts, err := service.FetchSocialAccounts(r.Context(), claims.UserID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		if accounts == nil {
			accounts = []*domain.SocialAccount{}
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}

func AddSocialAccount(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddSocialAccount")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.AddSocialAccountRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		socialAccount, err := service.AddSocialAccount(r.Context(), claims.ID, &req)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, socialAccount)
	}
}

func RemoveSocialAccount(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RemoveSocialAccount")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.RemoveSocialAccount(r.Context(), claims.UserID, pathParam(r, "id")); err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetOAuthURL(service account.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetOAuthURL")

		redirectURI := r.URL.Query().Get("redirect_uri")
		if redirectURI == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "redirect_uri é obrigatório", nil)
			return
		}

		url, err := service.GetOAuthURL(pathParam(r, "platform"), redirectURI)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"url": url})
	}
}

// ConnectAccounts troca o code do OAuth e salva as contas comerciais encontradas
func ConnectAccounts(service account.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ConnectAccounts")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ConnectAccountsRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		accounts, err := service.ConnectAccounts(r.Context(), claims.UserID, pathParam(r, "platform"), req.Code, req.RedirectURI)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, accounts)
	}
}
