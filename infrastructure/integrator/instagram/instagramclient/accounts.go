package instagramclient

import (
	"context"
	"net/url"

	igdomain "github.com/vfg2006/adcreative-api/infrastructure/integrator/instagram/domain"
)

// TODO paginar com paging.next quando o usuário tiver mais de 25 páginas
func (c *InstagramClient) GetPages(ctx context.Context, accessToken string) ([]igdomain.Page, error) {
	params := url.Values{}
	params.Add("access_token", accessToken)
	params.Add("fields", "id,name,instagram_business_account")

	var response igdomain.PagesResponse
	if err := c.get(ctx, "me/accounts", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
