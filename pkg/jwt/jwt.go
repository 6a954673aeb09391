package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = 59 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims is the payload shared by access and refresh tokens.
type Claims struct {
	UserID        string  `json:"userId"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	WalletBalance float64 `json:"walletBalance"`
	jwt.RegisteredClaims
}

// Service signs and verifies token pairs. Access and refresh tokens use
// distinct secrets so a leaked access secret cannot mint refresh tokens.
type Service struct {
	secretKey        []byte
	refreshSecretKey []byte
}

func NewService(secretKey, refreshSecretKey string) *Service {
	return &Service{
		secretKey:        []byte(secretKey),
		refreshSecretKey: []byte(refreshSecretKey),
	}
}

// GenerateTokenPair issues an access token and a refresh token carrying the
// same identity claims.
func (s *Service) GenerateTokenPair(userID, email, name, role string, walletBalance float64) (string, string, error) {
	accessToken, err := s.sign(userID, email, name, role, walletBalance, s.secretKey, AccessTokenTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.sign(userID, email, name, role, walletBalance, s.refreshSecretKey, RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *Service) sign(userID, email, name, role string, walletBalance float64, key []byte, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:        userID,
		Email:         email,
		Name:          name,
		Role:          role,
		WalletBalance: walletBalance,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateAccessToken verifies the signature and expiry of an access token.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, s.secretKey)
}

// ValidateRefreshToken verifies the signature and expiry of a refresh token.
func (s *Service) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return s.validate(tokenString, s.refreshSecretKey)
}

func (s *Service) validate(tokenString string, key []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
