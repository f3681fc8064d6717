// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func directHMAC(data []byte, key string) string {
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func TestSignPayload_MatchesDirectHMAC(t *testing.T) {
	body := []byte("booking payload")

	if got := SignPayload(body, testHashKey); got != directHMAC(body, testHashKey) {
		t.Fatalf("unexpected signature\nwant: %s\ngot:  %s", directHMAC(body, testHashKey), got)
	}
}

func TestSignPayload_DifferentKeys(t *testing.T) {
	body := []byte("data")
	if SignPayload(body, "key-1") == SignPayload(body, "key-2") {
		t.Fatal("different keys must produce different signatures")
	}
}

func TestSignPayload(t *testing.T) {
	body := []byte(`{"id":"1"}`)

	if got := SignPayload(body, ""); got != "" {
		t.Errorf("expected empty signature without key, got %q", got)
	}

	sig := SignPayload(body, testHashKey)
	if sig != directHMAC(body, testHashKey) {
		t.Errorf("unexpected signature: %s", sig)
	}
	if SignPayload(body, testHashKey) != sig {
		t.Error("signature must be deterministic")
	}
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"id":"1"}`)
	sig := SignPayload(body, testHashKey)

	tests := []struct {
		name string
		body []byte
		sig  string
		key  string
		want bool
	}{
		{"valid", body, sig, testHashKey, true},
		{"tampered body", []byte(`{"id":"2"}`), sig, testHashKey, false},
		{"wrong key", body, sig, "other", false},
		{"not hex", body, "zz", testHashKey, false},
		{"empty signature", body, "", testHashKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifySignature(tt.body, tt.sig, tt.key); got != tt.want {
				t.Errorf("VerifySignature() = %v, want %v", got, tt.want)
			}
		})
	}
}
