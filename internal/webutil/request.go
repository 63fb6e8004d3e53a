package webutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cohort_lms/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)

// DecodeJSONBody はリクエストボディをデコードする
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errInvalidBody
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// DecodeAndValidate はデコード後に validate タグを検証する
// デコード失敗は 400、検証失敗は翻訳済みメッセージ付きの 422
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(w, r, dst); err != nil {
		return err
	}
	if err := Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewValidationErrorResponse(validationErrors)
		}
		return err
	}
	return nil
}

// URLParamUUID はパスパラメータを UUID として読む
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", name+" must be a valid UUID", name, model.ErrInvalidInput)
	}
	return id, nil
}

// QueryUUID は任意のクエリパラメータを UUID として読む。無ければ nil
func QueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", name+" must be a valid UUID", name, model.ErrInvalidInput)
	}
	return &id, nil
}

// QueryBool は "true" / "1" などを真偽値として読む。無ければ false
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, model.NewAppError("INVALID_QUERY_PARAM", name+" must be a boolean", name, model.ErrInvalidInput)
	}
	return v, nil
}
