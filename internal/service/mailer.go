//go:generate mockery --name Mailer --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cohort_lms/internal/config"
	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// --- LogMailer ---
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// NewMailer は mailer.type に応じて実装を切り替える
func NewMailer(cfg *config.Config) (Mailer, error) {
	switch cfg.Mailer.Type {
	case "ses":
		slog.Info("Using SESMailer")
		return NewSESMailer(cfg)
	case "log", "":
		slog.Info("Using LogMailer")
		return &LogMailer{}, nil
	default:
		slog.Warn("Unknown mailer type, falling back to LogMailer", "type", cfg.Mailer.Type)
		return &LogMailer{}, nil
	}
}

// gradeNotification は採点結果の通知メール
func gradeNotification(frontendURL string, submission *model.Submission) (subject, body string) {
	blockTitle, lessonTitle := "", ""
	if cb := submission.ContentBlock; cb != nil {
		blockTitle = cb.Title
		if cb.Lesson != nil {
			lessonTitle = cb.Lesson.Title
		}
	}
	grade := ""
	if submission.Grade != nil {
		grade = submission.Grade.String()
	}

	if submission.Grade != nil && submission.Grade.IsRedo() {
		subject = fmt.Sprintf("Please resubmit: %s", blockTitle)
	} else {
		subject = fmt.Sprintf("Your submission was graded: %s", blockTitle)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Lesson: %s\n", lessonTitle)
	fmt.Fprintf(&b, "Exercise: %s\n", blockTitle)
	fmt.Fprintf(&b, "Attempt: %d\n", submission.NumSubmissions)
	fmt.Fprintf(&b, "Grade: %s\n", grade)
	if submission.Feedback != "" {
		fmt.Fprintf(&b, "\nFeedback:\n%s\n", submission.Feedback)
	}
	if frontendURL != "" && submission.ContentBlock != nil {
		fmt.Fprintf(&b, "\n%s/lessons/%s\n", strings.TrimRight(frontendURL, "/"), submission.ContentBlock.LessonID)
	}
	return subject, b.String()
}
