// Package token issues and verifies the HS256 JWTs used for API authentication.
package token

import (
	"errors"
	"fmt"
	"time"

	autherrors "go-payslip/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

const DefaultRefreshTTL = 7 * 24 * time.Hour

type Claims struct {
	UserID string `json:"user_id"`
	Kind   Kind   `json:"token_type"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return NewManagerWithClock(secret, accessTTL, refreshTTL, time.Now)
}

func NewManagerWithClock(secret string, accessTTL, refreshTTL time.Duration, now func() time.Time) *Manager {
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &Manager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL, now: now}
}

func (m *Manager) AccessTTL() time.Duration  { return m.accessTTL }
func (m *Manager) RefreshTTL() time.Duration { return m.refreshTTL }

func (m *Manager) Issue(userID string, kind Kind) (string, error) {
	ttl := m.accessTTL
	if kind == KindRefresh {
		ttl = m.refreshTTL
	}

	now := m.now()
	claims := Claims{
		UserID: userID,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies signature, expiry and kind, and returns the user id.
func (m *Manager) Parse(raw string, kind Kind) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))

	if errors.Is(err, jwt.ErrTokenExpired) {
		return "", autherrors.ErrTokenExpired
	}
	if err != nil || !tok.Valid {
		return "", autherrors.ErrInvalidToken
	}
	if claims.Kind != kind || claims.UserID == "" {
		return "", autherrors.ErrInvalidToken
	}
	return claims.UserID, nil
}
