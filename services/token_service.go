package services

import (
	"errors"
	"fmt"
	"time"

	"blogapi/config"
	"blogapi/models"

	"github.com/golang-jwt/jwt/v4"
)

// Token validation failures. Expiry is the one case distinguished for
// clients, so they can prompt re-authentication; every other failure
// collapses to ErrTokenInvalid.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the signed, self-contained identity
// assertion carried by clients. Tokens are stateless: there is no
// revocation list, so a compromised token stays usable until it expires.
type TokenService interface {
	Issue(identity models.Identity) (string, error)
	Validate(tokenString string) (*models.Identity, error)
}

type tokenService struct {
	cfg config.JWTConfig
}

func NewTokenService(cfg config.JWTConfig) TokenService {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) Issue(identity models.Identity) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", identity.UserID),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.cfg.Secret)
}

func (s *tokenService) Validate(tokenString string) (*models.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.cfg.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	if !claims.VerifyIssuer(s.cfg.Issuer, true) {
		return nil, ErrTokenInvalid
	}
	if !claims.VerifyAudience(s.cfg.Audience, true) {
		return nil, ErrTokenInvalid
	}

	return &models.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
