package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/domain"
	"github.com/vfg2006/adcreative-api/internal/usecases/generating"
)

func GenerateAdCopy(service generating.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateAdCopy")

		var req domain.AdCopyRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		copies, err := service.GenerateAdCopy(r.Context(), req.ProductDescription, req.Platform, req.Style)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, copies)
	}
}

func GenerateImageVariations(service generating.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateImageVariations")

		var req domain.ImageVariationRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		variation, err := service.GenerateImageVariations(r.Context(), req.ImageURL, req.Style, req.Platform)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, variation)
	}
}

func EnhanceImage(service generating.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - EnhanceImage")

		var req domain.EnhanceImageRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		enhanced, err := service.EnhanceImage(r.Context(), req.ImageURL, req.Style)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, enhanced)
	}
}

func RemoveBackground(service generating.Interface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RemoveBackground")

		var req domain.EnhanceImageRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		result, err := service.RemoveBackground(r.Context(), req.ImageURL)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
