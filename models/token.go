package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to a clinic administrator.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. The administrator
// login is carried in the "sub" claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Login is the administrator login extracted from the "sub" claim.
	Login string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// AdminCredentials is the body of the admin login request.
type AdminCredentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
