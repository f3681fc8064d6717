package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayload returns the hex HMAC-SHA256 of body, or "" when hashKey is
// empty. The webhook adapter sends it in the X-Signature header so the
// receiver can authenticate the request.
func SignPayload(body []byte, hashKey string) string {
	if hashKey == "" {
		return ""
	}
	return hex.EncodeToString(hashString(body, hashKey))
}

// VerifySignature reports whether signature is the hex HMAC-SHA256 of body
// under hashKey. Comparison is constant time. Webhook receivers written in
// Go can use it to authenticate X-Signature.
func VerifySignature(body []byte, signature, hashKey string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, hashString(body, hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
