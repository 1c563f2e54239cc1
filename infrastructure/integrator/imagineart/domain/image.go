package imaginedomain

type GenerationRequest struct {
	Prompt   string `json:"prompt"`
	ImageURL string `json:"image_url"`
	Style    string `json:"style"`
	Enhance  bool   `json:"enhance"`
	Upscale  bool   `json:"upscale"`
}

type BackgroundRemovalRequest struct {
	ImageURL string `json:"image_url"`
}

type ImageData struct {
	URL string `json:"url"`
}

type ImageResponse struct {
	Data   ImageData `json:"data"`
	TaskID string    `json:"task_id"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
