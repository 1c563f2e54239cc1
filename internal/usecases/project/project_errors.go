package project

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound       = errors.New("Project not found")
	ErrAdVariationNotFound   = errors.New("Ad variation not found")
	ErrNoAdVariations        = errors.New("Project not found or no ad variations")
	ErrSocialAccountNotFound = errors.New("Social account not found")

	ErrUploadImage     = errors.New("Failed to upload product image")
	ErrFetchProjects   = errors.New("Failed to fetch projects")
	ErrCreateProject   = errors.New("Failed to create project")
	ErrUpdateProject   = errors.New("Failed to update project")
	ErrDeleteProject   = errors.New("Failed to delete project")
	ErrPostAdVariation = errors.New("Failed to post ad variation")
	ErrUpdateMetrics   = errors.New("Failed to update metrics")
)

type ProjectError struct {
	Err       error
	Code      string
	ProjectID string
	Details   string
}

func (e *ProjectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProjectError) Unwrap() error {
	return e.Err
}

func NewProjectError(baseErr error, code string, details string) *ProjectError {
	return &ProjectError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewProjectErrorWithID(baseErr error, code string, projectID string, details string) *ProjectError {
	return &ProjectError{
		Err:       baseErr,
		Code:      code,
		ProjectID: projectID,
		Details:   details,
	}
}
