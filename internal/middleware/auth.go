package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cohort_lms/internal/config"
	"cohort_lms/internal/model"
	"cohort_lms/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// Authenticator はIdPのクレームをアプリのユーザーに解決する (UserService が実装する)
type Authenticator interface {
	ResolveIdentity(ctx context.Context, claims model.IdentityClaims) (*model.User, error)
}

var (
	errMissingAuthHeader = model.NewAppError("UNAUTHORIZED", "Authorization header is required", "", model.ErrUnauthorized)
	errBadAuthHeader     = model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer <token>'", "", model.ErrUnauthorized)
	errInvalidToken      = model.NewAppError("INVALID_TOKEN", "Invalid or expired token", "", model.ErrUnauthorized)
	errNoPrincipal       = model.NewAppError("UNAUTHORIZED", "Authentication required", "", model.ErrUnauthorized)
)

// JWTAuthMiddleware はIdPが発行した Bearer トークンを検証し、ユーザーを解決して Principal をコンテキストに入れる
// jwt.rsa_public_key_pem があれば RS256、無ければ jwt.hmac_secret で HS256
func JWTAuthMiddleware(cfg *config.Config, authenticator Authenticator) (func(http.Handler) http.Handler, error) {
	key, method, err := verificationKey(cfg.JWT)
	if err != nil {
		return nil, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.JWT.Leeway),
	}
	if cfg.JWT.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWT.Issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, errMissingAuthHeader)
				return
			}
			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, errBadAuthHeader)
				return
			}

			claims := &model.IdPClaims{}
			_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
				return key, nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, errInvalidToken)
				return
			}

			user, err := authenticator.ResolveIdentity(r.Context(), claims.Identity())
			if err != nil {
				logger.Warn("JWT auth failed: Unable to resolve user", "error", err, "subject", claims.Subject)
				webutil.HandleError(w, logger, err)
				return
			}

			ctx := WithPrincipal(r.Context(), user.Principal())
			ctx = WithLogger(ctx, logger.With("user_id", user.ID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}, nil
}

func verificationKey(cfg config.JWTConfig) (interface{}, string, error) {
	if cfg.RSAPublicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.RSAPublicKeyPEM))
		if err != nil {
			return nil, "", fmt.Errorf("parse jwt.rsa_public_key_pem: %w", err)
		}
		return key, jwt.SigningMethodRS256.Alg(), nil
	}
	if cfg.HMACSecret != "" {
		return []byte(cfg.HMACSecret), jwt.SigningMethodHS256.Alg(), nil
	}
	return nil, "", errors.New("auth is enabled but neither jwt.rsa_public_key_pem nor jwt.hmac_secret is set")
}

// WithPrincipal は認証済みユーザーをコンテキストに入れる
func WithPrincipal(ctx context.Context, principal model.Principal) context.Context {
	return context.WithValue(ctx, model.PrincipalKey, principal)
}

// GetPrincipal はコンテキストから認証済みユーザーを取り出す
func GetPrincipal(ctx context.Context) (model.Principal, error) {
	principal, ok := ctx.Value(model.PrincipalKey).(model.Principal)
	if !ok {
		return model.Principal{}, errNoPrincipal
	}
	return principal, nil
}

// RequireStaff は講師・管理者以外を 403 で止める
func RequireStaff(next http.Handler) http.Handler {
	return requireRole(next, model.Principal.IsStaff, "Staff access required")
}

// RequireAdmin は管理者以外を 403 で止める
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(next, model.Principal.IsAdmin, "Admin access required")
}

func requireRole(next http.Handler, allowed func(model.Principal) bool, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())
		principal, err := GetPrincipal(r.Context())
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		if !allowed(principal) {
			logger.Warn("Access denied", "role", principal.Role.String(), "path", r.URL.Path)
			webutil.HandleError(w, logger, model.NewAppError("FORBIDDEN", message, "", model.ErrForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}
