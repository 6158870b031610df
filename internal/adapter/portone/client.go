package portone

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"sync"
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ErrPaymentNotFound indicates the gateway has no transaction for the
// merchant uid. Distinguishable from transport failures, which surface as
// plain errors.
var ErrPaymentNotFound = errors.New("payment not found at gateway")

// Client exposes operations to verify payments against the gateway.
// The gateway's state is authoritative; this client only pulls it.
type Client interface {
	Find(ctx context.Context, merchantUID string) (*model.GatewayPayment, error)
	IsPaid(expectedAmount int64, payment *model.GatewayPayment) bool
	ShopID() string
}

// Credentials hold static provider secrets supplied via configuration.
type Credentials struct {
	APIKey    string
	APISecret string
	ShopID    string
}

// HTTPClient implements Client via the gateway REST API.
type HTTPClient struct {
	baseURL     *url.URL
	credentials Credentials
	httpClient  *http.Client
	logger      *slog.Logger

	mu           sync.Mutex
	accessToken  string
	tokenExpires time.Time
}

// tokenRequest/tokenResponse mirror POST /users/getToken.
type tokenRequest struct {
	ImpKey    string `json:"imp_key"`
	ImpSecret string `json:"imp_secret"`
}

type tokenResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Response struct {
		AccessToken string `json:"access_token"`
		ExpiredAt   int64  `json:"expired_at"`
	} `json:"response"`
}

// findResponse mirrors GET /payments/find/{merchant_uid}.
type findResponse struct {
	Code     int             `json:"code"`
	Message  string          `json:"message"`
	Response json.RawMessage `json:"response"`
}

type paymentPayload struct {
	ImpUID      string `json:"imp_uid"`
	MerchantUID string `json:"merchant_uid"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
}

// NewHTTPClient creates a gateway client with default timeout.
func NewHTTPClient(baseURL string, credentials Credentials, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL:     parsed,
		credentials: credentials,
		logger:      logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Find queries the gateway for the authoritative state of one payment.
func (c *HTTPClient) Find(ctx context.Context, merchantUID string) (*model.GatewayPayment, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/payments/find/", merchantUID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data findResponse
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, err
		}
		if data.Code != 0 {
			c.logger.Warn("gateway rejected lookup",
				slog.String("merchant_uid", merchantUID),
				slog.Int("code", data.Code),
				slog.String("message", data.Message),
			)
			return nil, ErrPaymentNotFound
		}
		var payload paymentPayload
		if err := json.Unmarshal(data.Response, &payload); err != nil {
			return nil, err
		}
		return &model.GatewayPayment{
			ImpUID:      payload.ImpUID,
			MerchantUID: payload.MerchantUID,
			Status:      model.PayStatus(payload.Status),
			Amount:      payload.Amount,
			Raw:         data.Response,
		}, nil
	case http.StatusNotFound:
		return nil, ErrPaymentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("gateway request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}
}

// IsPaid reports whether the gateway settled the payment for exactly the
// expected amount.
func (c *HTTPClient) IsPaid(expectedAmount int64, payment *model.GatewayPayment) bool {
	if payment == nil {
		return false
	}
	return payment.Status == model.PayStatusPaid && payment.Amount == expectedAmount
}

// ShopID returns the merchant shop identifier passed to the gateway's
// client-side SDK.
func (c *HTTPClient) ShopID() string {
	return c.credentials.ShopID
}

func (c *HTTPClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpires) {
		return c.accessToken, nil
	}

	payload, err := json.Marshal(tokenRequest{ImpKey: c.credentials.APIKey, ImpSecret: c.credentials.APISecret})
	if err != nil {
		return "", err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/users/getToken")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("gateway token request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("gateway token error: %s", resp.Status)
	}

	var data tokenResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", err
	}
	if data.Code != 0 || data.Response.AccessToken == "" {
		return "", fmt.Errorf("gateway token rejected: %s", data.Message)
	}

	c.accessToken = data.Response.AccessToken
	c.tokenExpires = time.Unix(data.Response.ExpiredAt, 0).Add(-30 * time.Second)
	return c.accessToken, nil
}
