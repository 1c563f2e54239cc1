package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/insighting"
	"github.com/vfg2006/adcreative-api/internal/usecases/project"
	"github.com/vfg2006/adcreative-api/pkg/apiErrors"
	"github.com/vfg2006/adcreative-api/pkg/validator"
)

const (
	maxImageBytes = 10 << 20
	// imagem mais os campos do formulário
	maxProjectFormBytes = maxImageBytes + 1<<20
)

func ListProjects(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListProjects")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		projects, err := service.FetchProjects(r.Context(), claims.UserID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		if projects == nil {
			projects = []*domain.Project{}
		}

		writeJSON(w, http.StatusOK, projects)
	}
}

// CreateProject aceita json ou multipart com o arquivo no campo "image"
func CreateProject(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProject")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var input domain.ProjectInput

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			r.Body = http.MaxBytesReader(w, r.Body, maxProjectFormBytes)
			ok := readProjectForm(w, r, &input)
			if r.MultipartForm != nil {
				defer r.MultipartForm.RemoveAll()
			}
			if !ok {
				return
			}
			if input.Image != nil {
				if closer, ok := input.Image.Body.(io.Closer); ok {
					defer closer.Close()
				}
			}
		} else if !decodeAndValidate(w, r, &input) {
			return
		}

		if input.Image == nil && input.ProductImageURL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Imagem do produto é obrigatória", nil)
			return
		}

		created, err := service.CreateProject(r.Context(), claims.UserID, &input)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func readProjectForm(w http.ResponseWriter, r *http.Request, input *domain.ProjectInput) bool {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		logrus.WithError(err).Warn("Formulário multipart inválido")

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Imagem excede o limite de 10MB", nil)
			return false
		}

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário inválido", nil)
		return false
	}

	input.Name = r.FormValue("name")
	input.Description = r.FormValue("description")
	input.ProductImageURL = r.FormValue("product_image_url")

	for _, value := range r.MultipartForm.Value["target_platforms"] {
		for _, platform := range strings.Split(value, ",") {
			if platform = strings.TrimSpace(platform); platform != "" {
				input.TargetPlatforms = append(input.TargetPlatforms, platform)
			}
		}
	}

	if fieldErrors := validator.Validate(input); fieldErrors != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados inválidos", fieldErrors)
		return false
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return true
	}
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Imagem inválida", nil)
		return false
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		file.Close()
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O arquivo deve ser uma imagem", nil)
		return false
	}

	input.Image = &domain.ImageUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	}

	return true
}

func GetProject(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetProject")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		found, err := service.GetProject(r.Context(), claims.UserID, pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, found)
	}
}

func UpdateProject(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProject")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.UpdateProjectRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		updated, err := service.UpdateProject(r.Context(), claims.UserID, pathParam(r, "id"), &req)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteProject(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProject")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.DeleteProject(r.Context(), claims.UserID, pathParam(r, "id")); err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GenerateAdVariations(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateAdVariations")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.GenerateVariationsRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		variations, err := service.GenerateAdVariations(r.Context(), claims.UserID, pathParam(r, "id"), &req)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, variations)
	}
}

func GetProjectAnalytics(service project.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetProjectAnalytics")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		analytics, err := service.GetProjectAnalytics(r.Context(), claims.UserID, pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, analytics)
	}
}

func GetProjectInsights(service insighting.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetProjectInsights")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		insight, err := service.AnalyzeProjectPerformance(r.Context(), claims.UserID, pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, insight)
	}
}
