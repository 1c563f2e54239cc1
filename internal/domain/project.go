package domain

import (
	"io"
	"time"
)

const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
)

var SupportedPlatforms = []string{PlatformInstagram, PlatformTikTok}

func IsSupportedPlatform(platform string) bool {
	for _, p := range SupportedPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

type Project struct {
	ProjectID       string         `json:"project_id"`
	UserID          string         `json:"user_id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	ProductImageURL string         `json:"product_image_url"`
	TargetPlatforms []string       `json:"target_platforms"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	AdVariations    []*AdVariation `json:"ad_variations"`
}

// ImageUpload é uma imagem ainda não persistida no storage
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProjectInput é a entrada de criação de projeto. Quando Image está
// presente, ela é enviada ao storage e substitui ProductImageURL.
type ProjectInput struct {
	Name            string       `json:"name" validate:"required,max=120"`
	Description     string       `json:"description" validate:"required"`
	ProductImageURL string       `json:"product_image_url" validate:"omitempty,url"`
	TargetPlatforms []string     `json:"target_platforms" validate:"required,min=1,dive,oneof=instagram tiktok"`
	Image           *ImageUpload `json:"-"`
}

type UpdateProjectRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	ProductImageURL *string  `json:"product_image_url" validate:"omitempty,url"`
	TargetPlatforms []string `json:"target_platforms" validate:"omitempty,dive,oneof=instagram tiktok"`
}

type GenerateVariationsRequest struct {
	ProductImage string   `json:"product_image" validate:"omitempty,url"`
	Description  string   `json:"description"`
	Platforms    []string `json:"platforms" validate:"omitempty,dive,oneof=instagram tiktok"`
	Count        int      `json:"count" validate:"omitempty,min=1,max=10"`
}

// Workspace espelha o estado local de projetos de um usuário
type Workspace struct {
	Projects       []*Project `json:"projects"`
	CurrentProject *Project   `json:"current_project"`
	IsLoading      bool       `json:"is_loading"`
	IsGenerating   bool       `json:"is_generating"`
	Error          *string    `json:"error"`
}
