package domain

const (
	DefaultCopyStyle    = "engaging"
	DefaultEnhanceStyle = "professional"
	DefaultVariations   = 3
)

type AdCopy struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Platform string `json:"platform"`
	Style    string `json:"style"`
}

type ImageVariation struct {
	ImageURL string `json:"image_url"`
	Prompt   string `json:"prompt"`
}

type EnhancedImage struct {
	ImageURL string `json:"image_url"`
	TaskID   string `json:"task_id,omitempty"`
}

// GeneratedVariation é a variação produzida pela IA, antes de ser salva
type GeneratedVariation struct {
	ID                 int                `json:"id"`
	Prompt             string             `json:"prompt"`
	GeneratedText      string             `json:"generated_text"`
	GeneratedImageURL  string             `json:"generated_image_url"`
	Platform           string             `json:"platform"`
	Style              string             `json:"style"`
	Status             string             `json:"status"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
}

type AdCopyRequest struct {
	ProductDescription string `json:"product_description" validate:"required"`
	Platform           string `json:"platform" validate:"required,oneof=instagram tiktok"`
	Style              string `json:"style"`
}

type ImageVariationRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Style    string `json:"style" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=instagram tiktok"`
}

type EnhanceImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Style    string `json:"style"`
}

type PerformanceInsight struct {
	Insights string `json:"insights"`
}
