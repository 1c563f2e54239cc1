package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/usecases/project"
)

type setCurrentProjectRequest struct {
	ProjectID string `json:"project_id"`
}

func GetWorkspace(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetWorkspace")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, service.GetWorkspace(claims.UserID))
	}
}

// SetCurrentProject com project_id vazio limpa o projeto atual
func SetCurrentProject(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetCurrentProject")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req setCurrentProjectRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		workspace, err := service.SetCurrentProject(r.Context(), claims.UserID, req.ProjectID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, workspace)
	}
}

func ClearWorkspaceError(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ClearWorkspaceError")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, service.ClearError(claims.UserID))
	}
}

func ResetWorkspace(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ResetWorkspace")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		service.Reset(claims.UserID)
		w.WriteHeader(http.StatusNoContent)
	}
}
