package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/you/vaultsvc/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, issuer string, accessTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// Issue implements domain.TokenService
func (j *JWTServiceImpl) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(j.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService. It fails closed: any parse or
// signature problem that is not an expiry maps to ErrTokenInvalid.
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	return &domain.TokenClaims{
		UserID:    uint(userID),
		Email:     email,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
