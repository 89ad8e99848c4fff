package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type principalKey struct{}

// Claims токена, в sub числовой id пользователя.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var errInvalidSubject = errors.New("subject is not a user id")

// ParseToken проверяет HS256 токен и возвращает вызывающего.
func ParseToken(token string, secret []byte) (entities.Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return entities.Principal{}, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return entities.Principal{}, errInvalidSubject
	}

	role := claims.Role
	if role != entities.RoleAdmin {
		role = entities.RoleCustomer
	}
	return entities.Principal{UserID: userID, Role: role}, nil
}

// IssueToken подписывает токен для p, нужен утилитам и тестам.
func IssueToken(p entities.Principal, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Authenticate требует валидный bearer токен и кладёт вызывающего в контекст запроса.
func Authenticate(secret string) func(next http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			p, err := ParseToken(token, key)
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireAdmin ставится после Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFrom(r.Context())
		if !ok {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !p.IsAdmin() {
			utils.WriteError(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	return p, ok
}
