package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"cohort_lms/internal/config"
	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"

	"github.com/go-resty/resty/v2"
)

// IdentityClient はIdPのバックエンドAPIからユーザー情報を取得する
// JWTにメールアドレスが含まれない場合に使う
type IdentityClient interface {
	FetchProfile(ctx context.Context, subject string) (*model.IdentityProfile, error)
}

type restyIdentityClient struct {
	client *resty.Client
}

// NewIdentityClient は api_url と secret_key が揃っていなければ nil を返す
func NewIdentityClient(cfg config.IdentityConfig) IdentityClient {
	if cfg.APIURL == "" || cfg.SecretKey == "" {
		return nil
	}
	client := resty.New().
		SetBaseURL(cfg.APIURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.SecretKey).
		SetHeader("Accept", "application/json")
	return &restyIdentityClient{client: client}
}

type idpEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type idpUser struct {
	PrimaryEmailAddressID string            `json:"primary_email_address_id"`
	EmailAddresses        []idpEmailAddress `json:"email_addresses"`
	FirstName             string            `json:"first_name"`
	LastName              string            `json:"last_name"`
}

// primaryEmail は primary_email_address_id に一致するアドレス、無ければ先頭
func (u *idpUser) primaryEmail() string {
	for _, e := range u.EmailAddresses {
		if e.ID == u.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	if len(u.EmailAddresses) > 0 {
		return u.EmailAddresses[0].EmailAddress
	}
	return ""
}

func (c *restyIdentityClient) FetchProfile(ctx context.Context, subject string) (*model.IdentityProfile, error) {
	logger := middleware.GetLogger(ctx)

	resp, err := c.client.R().
		SetContext(ctx).
		Get("/users/" + url.PathEscape(subject))
	if err != nil {
		logger.Warn("Identity provider API lookup failed", "error", err, "subject", subject)
		return nil, fmt.Errorf("identityClient.FetchProfile: %w", err)
	}
	if resp.IsError() {
		logger.Warn("Identity provider API returned error", "status", resp.StatusCode(), "subject", subject)
		return nil, fmt.Errorf("identityClient.FetchProfile: unexpected status %d", resp.StatusCode())
	}

	var u idpUser
	if err := json.Unmarshal(resp.Body(), &u); err != nil {
		logger.Warn("Failed to parse identity provider response", "error", err)
		return nil, fmt.Errorf("identityClient.FetchProfile: %w", err)
	}

	return &model.IdentityProfile{
		Email:     u.primaryEmail(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}
