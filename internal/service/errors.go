package service

import (
	"errors"

	"cohort_lms/internal/model"
)

func internalError(err error) *model.AppError {
	return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
}

func notFoundError(resource string) *model.AppError {
	return model.NewAppError("NOT_FOUND", resource+" not found", "", model.ErrNotFound)
}

func forbiddenError(message string) *model.AppError {
	return model.NewAppError("FORBIDDEN", message, "", model.ErrForbidden)
}

func invalidInputError(message, field string) *model.AppError {
	return model.NewAppError("INVALID_INPUT", message, field, model.ErrInvalidInput)
}

func validationError(message, field string) *model.AppError {
	return model.NewValidationError([]string{message}, field)
}

// repoError はリポジトリのエラーをクライアント向けの AppError に変換する
// AppError はそのまま返す
func repoError(err error, resource string) error {
	var appErr *model.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, model.ErrNotFound):
		return notFoundError(resource)
	case errors.Is(err, model.ErrConflict):
		return model.NewAppError("CONFLICT", resource+" already exists", "", model.ErrConflict)
	default:
		return internalError(err)
	}
}
