package tiktokdomain

type Advertiser struct {
	AdvertiserID   string `json:"advertiser_id"`
	AdvertiserName string `json:"advertiser_name"`
}

type BusinessRequest struct {
	AccessToken string `json:"access_token"`
}

type BusinessResponse struct {
	Envelope
	Data struct {
		List []Advertiser `json:"list"`
	} `json:"data"`
}

type PublishRequest struct {
	AccessToken  string `json:"access_token"`
	AdvertiserID string `json:"advertiser_id"`
	VideoURL     string `json:"video_url"`
	Text         string `json:"text"`
	PrivacyLevel string `json:"privacy_level"`
	ScheduleTime int64  `json:"schedule_time,omitempty"`
}

type PublishResponse struct {
	Envelope
	Data struct {
		ItemID string `json:"item_id"`
	} `json:"data"`
}

type AnalyticsResponse struct {
	Envelope
	Data map[string]any `json:"data"`
}

type TokenRequest struct {
	ClientKey    string `json:"client_key"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
	Code         string `json:"code,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in,omitempty"`
	OpenID           string `json:"open_id,omitempty"`
}
