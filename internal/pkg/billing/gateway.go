package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	ModeLive    = "live"
	ModeSandbox = "sandbox"
)

const (
	defaultGatewayLiveURL    = "https://api.authorize.net/xml/v1/request.api"
	defaultGatewaySandboxURL = "https://apitest.authorize.net/xml/v1/request.api"
)

var (
	// ErrNotConfigured is returned when gateway credentials are missing.
	ErrNotConfigured = errors.New("billing gateway is not configured")
	// ErrGateway covers non-success result codes and malformed responses.
	ErrGateway = errors.New("billing gateway request failed")
)

// Config carries the gateway credentials and mode. It is built once at
// startup and injected; the client never reads ambient state.
type Config struct {
	APILoginID     string
	TransactionKey string
	Mode           string

	// Optional endpoint overrides, used by tests.
	LiveURL    string
	SandboxURL string
}

// Gateway is the one outbound call this service makes to the payment
// provider. Fakes implement it in tests.
type Gateway interface {
	GetSubscription(ctx context.Context, subscriptionID string) (*GatewaySubscription, error)
}

// GatewayClient talks to the recurring-billing API of the payment gateway.
type GatewayClient struct {
	cfg Config

	HTTPClient *http.Client
}

// NewGatewayClient creates a gateway client from an injected config.
func NewGatewayClient(cfg Config) *GatewayClient {
	cfg.APILoginID = strings.TrimSpace(cfg.APILoginID)
	cfg.TransactionKey = strings.TrimSpace(cfg.TransactionKey)
	if cfg.Mode != ModeLive {
		cfg.Mode = ModeSandbox
	}
	if strings.TrimSpace(cfg.LiveURL) == "" {
		cfg.LiveURL = defaultGatewayLiveURL
	}
	if strings.TrimSpace(cfg.SandboxURL) == "" {
		cfg.SandboxURL = defaultGatewaySandboxURL
	}

	return &GatewayClient{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *GatewayClient) endpoint() string {
	if c.cfg.Mode == ModeLive {
		return c.cfg.LiveURL
	}
	return c.cfg.SandboxURL
}

type merchantAuthentication struct {
	Name           string `json:"name"`
	TransactionKey string `json:"transactionKey"`
}

type getSubscriptionRequest struct {
	MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
	SubscriptionID         string                 `json:"subscriptionId"`
}

type getSubscriptionEnvelope struct {
	Request getSubscriptionRequest `json:"ARBGetSubscriptionRequest"`
}

type getSubscriptionResponse struct {
	Subscription struct {
		Name            string      `json:"name"`
		Status          string      `json:"status"`
		Amount          json.Number `json:"amount"`
		PaymentSchedule struct {
			Interval struct {
				Length int    `json:"length"`
				Unit   string `json:"unit"`
			} `json:"interval"`
			StartDate string `json:"startDate"`
		} `json:"paymentSchedule"`
		NextBillingDate string `json:"nextBillingDate"`
		Profile         struct {
			CustomerProfileID        string `json:"customerProfileId"`
			CustomerPaymentProfileID string `json:"customerPaymentProfileId"`
		} `json:"profile"`
	} `json:"subscription"`
	Messages struct {
		ResultCode string `json:"resultCode"`
		Message    []struct {
			Code string `json:"code"`
			Text string `json:"text"`
		} `json:"message"`
	} `json:"messages"`
}

// GetSubscription fetches one subscription record from the gateway. Any
// transport error, non-2xx status or non-"Ok" result code is reported as
// an error; callers treat that as "no snapshot".
func (c *GatewayClient) GetSubscription(ctx context.Context, subscriptionID string) (*GatewaySubscription, error) {
	subID := strings.TrimSpace(subscriptionID)
	if subID == "" {
		return nil, fmt.Errorf("%w: subscription id is required", ErrGateway)
	}
	if c.cfg.APILoginID == "" || c.cfg.TransactionKey == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(getSubscriptionEnvelope{
		Request: getSubscriptionRequest{
			MerchantAuthentication: merchantAuthentication{
				Name:           c.cfg.APILoginID,
				TransactionKey: c.cfg.TransactionKey,
			},
			SubscriptionID: subID,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrGateway, resp.StatusCode, string(body))
	}

	var out getSubscriptionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if !strings.EqualFold(strings.TrimSpace(out.Messages.ResultCode), "Ok") {
		detail := ""
		if len(out.Messages.Message) > 0 {
			detail = out.Messages.Message[0].Text
		}
		return nil, fmt.Errorf("%w: result=%s %s", ErrGateway, out.Messages.ResultCode, detail)
	}

	return &GatewaySubscription{
		SubscriptionID:    subID,
		Status:            strings.ToLower(strings.TrimSpace(out.Subscription.Status)),
		Amount:            out.Subscription.Amount.String(),
		StartDate:         strings.TrimSpace(out.Subscription.PaymentSchedule.StartDate),
		IntervalUnit:      strings.ToLower(strings.TrimSpace(out.Subscription.PaymentSchedule.Interval.Unit)),
		CustomerProfileID: strings.TrimSpace(out.Subscription.Profile.CustomerProfileID),
		PaymentProfileID:  strings.TrimSpace(out.Subscription.Profile.CustomerPaymentProfileID),
		NextBillingDate:   strings.TrimSpace(out.Subscription.NextBillingDate),
	}, nil
}
