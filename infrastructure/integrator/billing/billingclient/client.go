package billingclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSessionResponse, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*domain.PortalSession, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*domain.BillingSubscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*domain.BillingSubscription, error)
	UpdateSubscription(ctx context.Context, subscriptionID, priceID string) (*domain.BillingSubscription, error)
	GetUsageStats(ctx context.Context, userID string) (*domain.UsageStats, error)
	CheckPlanLimits(ctx context.Context, userID, action string) (*domain.PlanLimitCheck, error)
}

type CheckoutSessionRequest struct {
	PriceID    string `json:"priceId"`
	UserID     string `json:"userId"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type portalSessionRequest struct {
	CustomerID string `json:"customerId"`
	ReturnURL  string `json:"returnUrl"`
}

type updateSubscriptionRequest struct {
	PriceID string `json:"priceId"`
}

type checkLimitsRequest struct {
	Action string `json:"action"`
}

type subscriptionEnvelope struct {
	Subscription *domain.BillingSubscription `json:"subscription"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type BillingClient struct {
	Cfg        config.Billing
	HTTPClient *http.Client
}

func NewClient(cfg config.Billing) Client {
	return &BillingClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *BillingClient) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	var session CheckoutSessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/create-checkout-session", req, &session, "Failed to create checkout session"); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *BillingClient) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*domain.PortalSession, error) {
	var session domain.PortalSession
	payload := portalSessionRequest{CustomerID: customerID, ReturnURL: returnURL}
	if err := c.do(ctx, http.MethodPost, "/api/create-portal-session", payload, &session, "Failed to create portal session"); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *BillingClient) GetSubscription(ctx context.Context, subscriptionID string) (*domain.BillingSubscription, error) {
	var subscription domain.BillingSubscription
	path := "/api/subscription/" + url.PathEscape(subscriptionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &subscription, "Failed to fetch subscription"); err != nil {
		return nil, err
	}

	return &subscription, nil
}

func (c *BillingClient) CancelSubscription(ctx context.Context, subscriptionID string) (*domain.BillingSubscription, error) {
	var envelope subscriptionEnvelope
	path := fmt.Sprintf("/api/subscription/%s/cancel", url.PathEscape(subscriptionID))
	if err := c.do(ctx, http.MethodPost, path, nil, &envelope, "Failed to cancel subscription"); err != nil {
		return nil, err
	}

	return envelope.Subscription, nil
}

func (c *BillingClient) UpdateSubscription(ctx context.Context, subscriptionID, priceID string) (*domain.BillingSubscription, error) {
	var envelope subscriptionEnvelope
	path := fmt.Sprintf("/api/subscription/%s/update", url.PathEscape(subscriptionID))
	if err := c.do(ctx, http.MethodPost, path, updateSubscriptionRequest{PriceID: priceID}, &envelope, "Failed to update subscription"); err != nil {
		return nil, err
	}

	return envelope.Subscription, nil
}

func (c *BillingClient) GetUsageStats(ctx context.Context, userID string) (*domain.UsageStats, error) {
	var usage domain.UsageStats
	if err := c.do(ctx, http.MethodGet, "/api/usage/"+url.PathEscape(userID), nil, &usage, "Failed to fetch usage stats"); err != nil {
		return nil, err
	}

	return &usage, nil
}

func (c *BillingClient) CheckPlanLimits(ctx context.Context, userID, action string) (*domain.PlanLimitCheck, error) {
	var check domain.PlanLimitCheck
	path := "/api/check-limits/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodPost, path, checkLimitsRequest{Action: action}, &check, "Failed to check plan limits"); err != nil {
		return nil, err
	}

	return &check, nil
}

// do envia a requisição; respostas fora de 2xx usam o campo error do corpo ou a mensagem padrão
func (c *BillingClient) do(ctx context.Context, method, path string, payload, out any, defaultMessage string) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.Cfg.APIURL, "/")+path, body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return errors.New(errResp.Error)
		}
		return errors.New(defaultMessage)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return errors.New(defaultMessage)
	}

	return nil
}
