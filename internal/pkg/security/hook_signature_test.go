package security

import (
	"strings"
	"testing"
)

func TestVerifyHookSignature(t *testing.T) {
	payload := []byte(`{"company_id":7,"user_type":"vendor"}`)
	secret := "top-secret"

	validSig := SignHookPayload(payload, secret)

	if !VerifyHookSignature(payload, validSig, secret) {
		t.Fatalf("expected signature to validate")
	}
	if !VerifyHookSignature(payload, strings.ToUpper(validSig), secret) {
		t.Fatalf("expected upper-case hex signature to validate")
	}
	if !VerifyHookSignature(payload, "  "+validSig+"  ", secret) {
		t.Fatalf("expected signature with surrounding whitespace to validate")
	}
	if VerifyHookSignature(payload, "deadbeef", secret) {
		t.Fatalf("expected invalid signature to fail")
	}
	if VerifyHookSignature([]byte(`{"company_id":8}`), validSig, secret) {
		t.Fatalf("expected signature over different payload to fail")
	}
	if VerifyHookSignature(payload, validSig, "other-secret") {
		t.Fatalf("expected signature with different secret to fail")
	}
}

func TestVerifyHookSignatureUnconfigured(t *testing.T) {
	payload := []byte(`{}`)

	if VerifyHookSignature(payload, "", "secret") {
		t.Fatalf("expected empty signature to fail")
	}
	if VerifyHookSignature(payload, SignHookPayload(payload, ""), "") {
		t.Fatalf("expected empty secret to never verify")
	}
	if VerifyHookSignature(payload, "not-hex!", "secret") {
		t.Fatalf("expected non-hex signature to fail")
	}
}
