package portfolio

import (
	"context"
	"errors"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"github.com/golang-jwt/jwt/v5"

	"noiruxe.app/portfolio/backend"
)

var secrets struct {
	AuthJWTSecret string
}

// AuthData keeps the caller's bearer token so backend calls can forward it.
type AuthData struct {
	Email string
	Token string
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

//encore:authhandler
func AuthHandler(ctx context.Context, token string) (auth.UID, *AuthData, error) {
	return verifyToken(token, []byte(secrets.AuthJWTSecret))
}

func verifyToken(token string, secret []byte) (auth.UID, *AuthData, error) {
	if token == "" {
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "missing token"}
	}
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "token expired"
		}
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: msg}
	}
	if c.Subject == "" {
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "token has no subject"}
	}
	return auth.UID(c.Subject), &AuthData{Email: c.Email, Token: token}, nil
}

// withToken attaches the authenticated caller's token for backend calls.
func withToken(ctx context.Context) context.Context {
	if data, ok := auth.Data().(*AuthData); ok && data != nil {
		return backend.WithToken(ctx, data.Token)
	}
	return ctx
}

func actor() string {
	uid, _ := auth.UserID()
	return string(uid)
}
