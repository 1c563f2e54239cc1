package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	AdVariationStatusGenerated = "generated"
	AdVariationStatusPosted    = "posted"
)

type PerformanceMetrics struct {
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	EngagementRate float64 `json:"engagement_rate"`
}

func (m PerformanceMetrics) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *PerformanceMetrics) Scan(src any) error {
	return scanJSON(src, m)
}

type PostingResult struct {
	SocialAccountID string `json:"social_account_id,omitempty"`
	Platform        string `json:"platform"`
	AccountName     string `json:"account_name"`
	Success         bool   `json:"success"`
	PostID          string `json:"post_id,omitempty"`
	Scheduled       bool   `json:"scheduled"`
	Error           string `json:"error,omitempty"`
}

type PostingResults []PostingResult

func (p PostingResults) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

func (p *PostingResults) Scan(src any) error {
	return scanJSON(src, p)
}

type AdVariation struct {
	AdVariationID      string             `json:"ad_variation_id"`
	ProjectID          string             `json:"project_id"`
	Prompt             string             `json:"prompt"`
	GeneratedText      string             `json:"generated_text"`
	GeneratedImageURL  string             `json:"generated_image_url"`
	Platform           string             `json:"platform"`
	Style              string             `json:"style"`
	Status             string             `json:"status"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
	PostingResults     PostingResults     `json:"posting_results,omitempty"`
	PostedAt           *time.Time         `json:"posted_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// PostedVariation é uma variação publicada com a conta dona do projeto,
// usada na sincronização de métricas
type PostedVariation struct {
	AdVariationID  string
	UserID         string
	PostingResults PostingResults
	PostedAt       time.Time
}

type PostAdVariationRequest struct {
	SocialAccountIDs []string   `json:"social_account_ids" validate:"required,min=1"`
	ScheduledTime    *time.Time `json:"scheduled_time"`
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("tipo não suportado para jsonb: %T", src)
	}
}
