package billing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func gatewayTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		var envelope getSubscriptionEnvelope
		if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
			t.Errorf("undecodable request body: %v", err)
		}
		if envelope.Request.MerchantAuthentication.Name == "" {
			t.Errorf("request is missing merchant authentication")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGetSubscriptionOk(t *testing.T) {
	srv := gatewayTestServer(t, http.StatusOK, `{
		"subscription": {
			"name": "Vendor Pro",
			"status": "Active",
			"amount": 29.99,
			"paymentSchedule": {
				"interval": { "length": 1, "unit": "Months" },
				"startDate": "2024-01-15"
			},
			"nextBillingDate": "2024-06-15",
			"profile": {
				"customerProfileId": "cp-1",
				"customerPaymentProfileId": "pp-1"
			}
		},
		"messages": { "resultCode": "Ok", "message": [{ "code": "I00001", "text": "Successful." }] }
	}`)
	defer srv.Close()

	client := NewGatewayClient(Config{
		APILoginID:     "login",
		TransactionKey: "key",
		Mode:           ModeSandbox,
		SandboxURL:     srv.URL,
	})

	sub, err := client.GetSubscription(context.Background(), "sub-100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != "active" {
		t.Fatalf("status = %q, want lower-cased active", sub.Status)
	}
	if sub.Amount != "29.99" {
		t.Fatalf("amount = %q, want 29.99", sub.Amount)
	}
	if sub.IntervalUnit != "months" {
		t.Fatalf("interval unit = %q, want months", sub.IntervalUnit)
	}
	if sub.CustomerProfileID != "cp-1" || sub.PaymentProfileID != "pp-1" {
		t.Fatalf("unexpected profile ids: %q %q", sub.CustomerProfileID, sub.PaymentProfileID)
	}
}

func TestGetSubscriptionErrorResultCode(t *testing.T) {
	srv := gatewayTestServer(t, http.StatusOK, `{
		"messages": { "resultCode": "Error", "message": [{ "code": "E00035", "text": "The subscription cannot be found." }] }
	}`)
	defer srv.Close()

	client := NewGatewayClient(Config{
		APILoginID:     "login",
		TransactionKey: "key",
		SandboxURL:     srv.URL,
	})

	_, err := client.GetSubscription(context.Background(), "sub-404")
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestGetSubscriptionHTTPFailure(t *testing.T) {
	srv := gatewayTestServer(t, http.StatusBadGateway, `upstream unavailable`)
	defer srv.Close()

	client := NewGatewayClient(Config{
		APILoginID:     "login",
		TransactionKey: "key",
		SandboxURL:     srv.URL,
	})

	_, err := client.GetSubscription(context.Background(), "sub-100")
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestGetSubscriptionMissingCredentials(t *testing.T) {
	client := NewGatewayClient(Config{})

	_, err := client.GetSubscription(context.Background(), "sub-100")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGetSubscriptionEmptyID(t *testing.T) {
	client := NewGatewayClient(Config{APILoginID: "login", TransactionKey: "key"})

	_, err := client.GetSubscription(context.Background(), "  ")
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestGatewayClientModeDefaultsToSandbox(t *testing.T) {
	client := NewGatewayClient(Config{APILoginID: "login", TransactionKey: "key", Mode: "production"})
	if client.endpoint() != defaultGatewaySandboxURL {
		t.Fatalf("unknown mode must fall back to the sandbox endpoint")
	}

	client = NewGatewayClient(Config{APILoginID: "login", TransactionKey: "key", Mode: ModeLive})
	if client.endpoint() != defaultGatewayLiveURL {
		t.Fatalf("live mode must use the live endpoint")
	}
}
