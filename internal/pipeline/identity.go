package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/evgeniy-krivenko/color-notes/internal/ctxtr"
)

const (
	DefaultAccountHeader = "X-Account-Id"
	DefaultUserHeader    = "X-User-Id"

	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

var errNoIdentity = errors.New("no caller identity in request")

// Metadata is the trusted request metadata identity is derived from.
type Metadata interface {
	Get(key string) string
}

type MetadataFunc func(key string) string

func (f MetadataFunc) Get(key string) string {
	return f(key)
}

type IdentityResolver interface {
	Resolve(ctx context.Context, md Metadata) (ctxtr.Caller, error)
}

// HeaderResolver reads both ids from headers set by a trusted proxy.
type HeaderResolver struct {
	accountHeader string
	userHeader    string
}

func NewHeaderResolver(accountHeader, userHeader string) *HeaderResolver {
	if accountHeader == "" {
		accountHeader = DefaultAccountHeader
	}
	if userHeader == "" {
		userHeader = DefaultUserHeader
	}

	return &HeaderResolver{accountHeader: accountHeader, userHeader: userHeader}
}

func (r *HeaderResolver) Resolve(_ context.Context, md Metadata) (ctxtr.Caller, error) {
	accountID, err := positiveID(md.Get(r.accountHeader))
	if err != nil {
		return ctxtr.Caller{}, fmt.Errorf("header %s: %w", r.accountHeader, err)
	}

	userID, err := positiveID(md.Get(r.userHeader))
	if err != nil {
		return ctxtr.Caller{}, fmt.Errorf("header %s: %w", r.userHeader, err)
	}

	return ctxtr.Caller{AccountID: accountID, UserID: userID}, nil
}

func positiveID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errNoIdentity
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id: %v", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}

	return id, nil
}

type Claims struct {
	AccountID int64 `json:"accountId"`
	UserID    int64 `json:"userId"`
	jwt.RegisteredClaims
}

// JWTResolver takes the caller from an HS256 bearer token.
type JWTResolver struct {
	secret []byte
}

func NewJWTResolver(secret string) (*JWTResolver, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	return &JWTResolver{secret: []byte(secret)}, nil
}

func (r *JWTResolver) Resolve(_ context.Context, md Metadata) (ctxtr.Caller, error) {
	header := md.Get(authorizationHeader)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ctxtr.Caller{}, errNoIdentity
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		strings.TrimPrefix(header, bearerPrefix),
		claims,
		func(*jwt.Token) (any, error) { return r.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return ctxtr.Caller{}, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return ctxtr.Caller{}, errors.New("invalid token")
	}

	caller := ctxtr.Caller{AccountID: claims.AccountID, UserID: claims.UserID}
	if !caller.Valid() {
		return ctxtr.Caller{}, fmt.Errorf("token ids must be positive, got account %d user %d",
			claims.AccountID, claims.UserID)
	}

	return caller, nil
}

// Sign issues a token accepted by r. Used by tooling and tests.
func (r *JWTResolver) Sign(caller ctxtr.Caller, claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AccountID:        caller.AccountID,
		UserID:           caller.UserID,
		RegisteredClaims: claims,
	})

	return token.SignedString(r.secret)
}
