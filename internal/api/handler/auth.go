package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/authenticating"
)

func SignUp(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SignUp")

		var req domain.SignUpRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := service.SignUp(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"user": user})
	}
}

func SignIn(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SignIn")

		var req domain.SignInRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		response, err := service.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func SignOut(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SignOut")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.SignOut(r.Context(), claims.ID); err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetSession devolve a sessão atualizada com perfil, assinatura e contas sociais
func GetSession(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSession")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		session, err := service.Initialize(r.Context(), claims.ID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	}
}
