package igdomain

type MediaRequest struct {
	ImageURL    string `json:"image_url"`
	Caption     string `json:"caption"`
	AccessToken string `json:"access_token"`
}

type PublishRequest struct {
	CreationID           string `json:"creation_id"`
	AccessToken          string `json:"access_token"`
	Published            *bool  `json:"published,omitempty"`
	ScheduledPublishTime int64  `json:"scheduled_publish_time,omitempty"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type InsightValue struct {
	Value int `json:"value"`
}

type InsightMetric struct {
	Name   string         `json:"name"`
	Values []InsightValue `json:"values"`
}

type InsightsResponse struct {
	Data []InsightMetric `json:"data"`
}

// TokenResponse representa a resposta da Graph API ao trocar um token
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
