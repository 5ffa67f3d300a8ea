// Package auth issues and verifies the stateless access and refresh tokens
// and hashes staff passwords.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Kind distinguishes access tokens from refresh tokens.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims carries the staff id in Subject plus the token kind.
type Claims struct {
	jwt.RegisteredClaims
	Kind Kind `json:"kind"`
}

// TokenPair is what a successful login hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Issuer signs and verifies tokens with a single HS256 secret.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewIssuer(secret []byte, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL, now: time.Now}
}

func (i *Issuer) IssueAccess(staffID int64) (string, error) {
	return i.issue(staffID, KindAccess, i.accessTTL)
}

func (i *Issuer) IssueRefresh(staffID int64) (string, error) {
	return i.issue(staffID, KindRefresh, i.refreshTTL)
}

func (i *Issuer) IssuePair(staffID int64) (*TokenPair, error) {
	access, err := i.IssueAccess(staffID)
	if err != nil {
		return nil, err
	}
	refresh, err := i.IssueRefresh(staffID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Issuer) issue(staffID int64, kind Kind, ttl time.Duration) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(staffID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Kind: kind,
	})

	s, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Verify checks signature, expiry and kind and returns the staff id.
// An expired token yields common.ErrTokenExpired; any other failure
// yields common.ErrInvalidToken.
func (i *Issuer) Verify(tokenString string, kind Kind) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid || claims.Kind != kind {
		return 0, common.ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}
	return id, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is not rotated.
func (i *Issuer) Refresh(refreshToken string) (string, error) {
	id, err := i.Verify(refreshToken, KindRefresh)
	if err != nil {
		return "", err
	}
	return i.IssueAccess(id)
}
