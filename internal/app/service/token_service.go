package service

import (
	"fmt"
	"time"

	"github.com/0xsj/overwatch-pkg/security"
	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// TokenService handles JWT token generation and validation.
type TokenService interface {
	// Issue creates a new access token for a user.
	Issue(user *model.User) (string, types.Timestamp, error)

	// Validate validates an access token and returns the claims.
	Validate(token string) (*AccessTokenClaims, error)
}

// AccessTokenClaims contains the claims embedded in an access token.
type AccessTokenClaims struct {
	UserID    types.ID
	Email     string
	ExpiresAt types.Timestamp
}

// TokenConfig holds configuration for token generation.
type TokenConfig struct {
	Issuer              string
	Audience            string
	AccessTokenDuration time.Duration
	SigningAlgorithm    string
	SigningKey          []byte
}

// DefaultTokenConfig returns default token configuration.
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		Issuer:              "overwatch-finance",
		Audience:            "finance",
		AccessTokenDuration: time.Hour,
		SigningAlgorithm:    "HS256",
	}
}

// tokenService implements TokenService.
type tokenService struct {
	config TokenConfig
	signer *security.HMACSigner
}

// NewTokenService creates a new TokenService.
func NewTokenService(config TokenConfig) (TokenService, error) {
	signer, err := newSigner(config)
	if err != nil {
		return nil, err
	}

	return &tokenService{
		config: config,
		signer: signer,
	}, nil
}

// newSigner resolves the configured algorithm identifier. Unknown
// identifiers fail here so a misconfigured service never signs a
// single token.
func newSigner(config TokenConfig) (*security.HMACSigner, error) {
	switch config.SigningAlgorithm {
	case "", "HS256":
		return security.NewHMACSigner(security.AlgorithmHS256, config.SigningKey)
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", config.SigningAlgorithm)
	}
}

func (s *tokenService) Issue(user *model.User) (string, types.Timestamp, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.config.AccessTokenDuration)

	claims := security.NewClaims().
		WithSubject(user.ID().String()).
		WithIssuer(s.config.Issuer).
		WithAudience(s.config.Audience).
		WithIssuedAt(now).
		WithExpirationTime(expiresAt).
		WithRandomJWTID().
		Set("email", user.Email().String())

	token, err := security.SignJWT(claims, s.signer)
	if err != nil {
		return "", types.Timestamp{}, err
	}

	return token, types.FromTime(expiresAt), nil
}

func (s *tokenService) Validate(token string) (*AccessTokenClaims, error) {
	opts := security.JWTVerifyOptions{
		ValidateExpiration: true,
		ValidateNotBefore:  true,
		ExpectedIssuer:     s.config.Issuer,
		ExpectedAudience:   s.config.Audience,
	}

	jwt, err := security.VerifyJWTWithOptions(token, s.signer, opts)
	if err != nil {
		return nil, err
	}

	userID, err := types.ParseID(jwt.Claims.Subject)
	if err != nil {
		return nil, security.ErrInvalidToken("invalid subject")
	}

	email, ok := jwt.Claims.GetString("email")
	if !ok {
		return nil, security.ErrInvalidToken("missing email claim")
	}

	return &AccessTokenClaims{
		UserID:    userID,
		Email:     email,
		ExpiresAt: types.FromTime(jwt.Claims.ExpirationTime.Time),
	}, nil
}
