package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cohort_lms/internal/config"
	"cohort_lms/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// sesSender は sesv2.Client のうち送信に使う部分
type sesSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer は AWS SES で採点通知などを送る
type SESMailer struct {
	client sesSender
	from   string
}

// NewSESMailer は ses.auth_type に応じて認証方法を切り替えてクライアントを作る
func NewSESMailer(cfg *config.Config) (Mailer, error) {
	if cfg.SES.From == "" {
		return nil, errors.New("ses.from is required for the ses mailer")
	}

	awsCfgOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.SES.Region),
	}

	switch cfg.SES.AuthType {
	case "static_credentials":
		slog.Info("Configuring SES with static credentials.")
		if cfg.SES.AccessKeyID == "" || cfg.SES.SecretAccessKey == "" {
			return nil, errors.New("ses.auth_type is static_credentials but access_key_id or secret_access_key is missing")
		}
		creds := credentials.NewStaticCredentialsProvider(cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, "")
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))
	case "iam_role", "":
		// SDK のデフォルトの認証情報チェーンに任せる
		slog.Info("Configuring SES with IAM Role credentials.")
	default:
		slog.Warn("Unknown SES auth_type specified, defaulting to IAM Role.", "type", cfg.SES.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config for SES: %w", err)
	}

	return newSESMailerWithClient(sesv2.NewFromConfig(awsCfg), cfg.SES.From), nil
}

func newSESMailerWithClient(client sesSender, from string) *SESMailer {
	return &SESMailer{client: client, from: from}
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	// 採点リクエストが終わっても送信は続ける
	if _, err := m.client.SendEmail(context.WithoutCancel(ctx), input); err != nil {
		logger.Error("Failed to send email via SES", "error", err, "to", to)
		return fmt.Errorf("SESMailer.Send: %w", err)
	}

	logger.Info("Email sent successfully via SES", "to", to, "subject", subject)
	return nil
}
