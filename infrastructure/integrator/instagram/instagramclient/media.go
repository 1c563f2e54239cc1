package instagramclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	igdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/domain"
)

const insightMetrics = "impressions,reach,likes,comments,shares,saves"

// CreateMedia cria o container de mídia e retorna o creation_id
func (c *InstagramClient) CreateMedia(ctx context.Context, accessToken, accountID string, imageURL, caption string) (string, error) {
	var response igdomain.IDResponse
	err := c.post(ctx, fmt.Sprintf("%s/media", accountID), igdomain.MediaRequest{
		ImageURL:    imageURL,
		Caption:     caption,
		AccessToken: accessToken,
	}, &response)
	if err != nil {
		return "", err
	}

	return response.ID, nil
}

// PublishMedia publica o container, ou agenda quando scheduledTime é informado
func (c *InstagramClient) PublishMedia(ctx context.Context, accessToken, accountID, creationID string, scheduledTime *time.Time) (string, error) {
	payload := igdomain.PublishRequest{
		CreationID:  creationID,
		AccessToken: accessToken,
	}

	if scheduledTime != nil {
		published := false
		payload.Published = &published
		payload.ScheduledPublishTime = scheduledTime.Unix()
	}

	var response igdomain.IDResponse
	if err := c.post(ctx, fmt.Sprintf("%s/media_publish", accountID), payload, &response); err != nil {
		return "", err
	}

	return response.ID, nil
}

func (c *InstagramClient) GetMediaInsights(ctx context.Context, accessToken, mediaID string) ([]igdomain.InsightMetric, error) {
	params := url.Values{}
	params.Add("metric", insightMetrics)
	params.Add("access_token", accessToken)

	var response igdomain.InsightsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/insights", mediaID), params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
