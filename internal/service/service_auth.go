package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/dental-site/internal/config"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/utils"
	"github.com/MKhiriev/dental-site/internal/validators"
	"github.com/MKhiriev/dental-site/models"
)

// authService is the concrete implementation of AuthService.
// There is a single administrator whose login and bcrypt password hash
// come from configuration.
type authService struct {
	// adminLogin is the only accepted login.
	adminLogin string

	// adminPasswordHash is the bcrypt hash the submitted password is
	// compared against.
	adminPasswordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from the admin settings in
// cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: []byte(cfg.AdminPasswordHash),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		validator:         validators.NewBookingValidator(),
		logger:            logger,
	}
}

// Login authenticates the administrator and issues a token.
//
// Returns:
//   - a wrapped *validators.FieldErrors if login or password is empty.
//   - ErrWrongCredentials if the login is unknown or the password does not
//     match the configured hash.
func (a *authService) Login(ctx context.Context, credentials models.AdminCredentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, fmt.Errorf("error during credentials validation: %w", err)
	}

	loginMatches := subtle.ConstantTimeCompare([]byte(credentials.Login), []byte(a.adminLogin)) == 1
	// the password is checked even for an unknown login
	passwordErr := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(credentials.Password))
	if !loginMatches || passwordErr != nil {
		log.Warn().Str("func", "authService.Login").Str("login", credentials.Login).Msg("wrong admin credentials")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.adminLogin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("error creating token")
		return models.Token{}, fmt.Errorf("error creating token: %w", err)
	}

	log.Info().Str("login", a.adminLogin).Msg("admin logged in")
	return token, nil
}

// ParseToken validates tokenString and checks that it was issued to the
// configured administrator.
//
// Returns ErrTokenIsExpired for an expired token and ErrInvalidToken for
// any other failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		logger.FromContext(ctx).Warn().Err(err).Str("func", "authService.ParseToken").Msg("invalid token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if token.Login != a.adminLogin {
		return models.Token{}, fmt.Errorf("%w: unknown subject", ErrInvalidToken)
	}

	return token, nil
}
