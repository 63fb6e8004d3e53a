// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// httpResponseExpectations はステータスとエラーコードの期待値
type httpResponseExpectations struct {
	ExpectedCode      int
	ExpectedErrorCode string
}

// asUser は開発用認証ミドルウェアのヘッダー
func asUser(userID uuid.UUID, role model.Role) map[string]string {
	return map[string]string{
		middleware.DevUserIDHeader:   userID.String(),
		middleware.DevUserRoleHeader: role.String(),
	}
}

// sendRequest はリクエストを送り、ステータスコードを検証してボディを返す
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) []byte {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	if expectations.ExpectedErrorCode != "" {
		verifyErrorResponse(t, respBodyBytes, expectations.ExpectedErrorCode)
	}
	return respBodyBytes
}

// verifyErrorResponse は {"error": {"code": ...}} のコードを検証する
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedCode string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &errResp), "Error response is not valid JSON: %s", string(bodyBytes))
	assert.Equal(t, expectedCode, errResp.Error.Code, "Error code mismatch: %s", string(bodyBytes))
	assert.NotEmpty(t, errResp.Error.Message)
}

// decodeEnvelope は {"<key>": ...} の中身を dst に読み込む
func decodeEnvelope(t *testing.T, body []byte, key string, dst interface{}) {
	t.Helper()
	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &env))
	raw, ok := env[key]
	require.True(t, ok, "Response has no %q key: %s", key, string(body))
	require.NoError(t, json.Unmarshal(raw, dst))
}

// extractField は {"<key>": {"<field>": ...}} の field を生の JSON で返す
func extractField(t *testing.T, body []byte, key, field string) json.RawMessage {
	t.Helper()
	var inner map[string]json.RawMessage
	decodeEnvelope(t, body, key, &inner)
	raw, ok := inner[field]
	require.True(t, ok, "Response %q has no %q field: %s", key, field, string(body))
	return raw
}
