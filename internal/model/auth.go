// internal/model/auth.go
package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ContextKey string

const (
	PrincipalKey ContextKey = "principal"
)

// Principal はリクエストごとに解決された認証済みユーザー
// ハンドラからサービスへ明示的に引数で渡す
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsStaff() bool { return p.Role.IsStaff() }
func (p Principal) IsAdmin() bool { return p.Role.IsAdmin() }

// IdentityClaims はIdPのJWTから取り出す値
type IdentityClaims struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// IdPClaims はJWTのペイロード
type IdPClaims struct {
	Email               string `json:"email"`
	PrimaryEmailAddress string `json:"primary_email_address"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	jwt.RegisteredClaims
}

func (c *IdPClaims) Identity() IdentityClaims {
	email := c.Email
	if email == "" {
		email = c.PrimaryEmailAddress
	}
	return IdentityClaims{
		Subject:   c.Subject,
		Email:     email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

// IdentityProfile はIdPのバックエンドAPIから取得したユーザー情報
type IdentityProfile struct {
	Email     string
	FirstName string
	LastName  string
}
