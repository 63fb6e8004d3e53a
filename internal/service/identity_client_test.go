package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cohort_lms/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityClient_FetchProfile(t *testing.T) {
	ctx := testContext()

	t.Run("正常系: primary のメールアドレスと氏名を返す", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/user_2abc", r.URL.Path)
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"primary_email_address_id": "idn_2",
				"email_addresses": [
					{"id": "idn_1", "email_address": "old@example.com"},
					{"id": "idn_2", "email_address": "sam@example.com"}
				],
				"first_name": "Sam",
				"last_name": "Student"
			}`))
		}))
		defer srv.Close()

		client := NewIdentityClient(config.IdentityConfig{APIURL: srv.URL, SecretKey: "sk_test", Timeout: time.Second})
		require.NotNil(t, client)

		got, err := client.FetchProfile(ctx, "user_2abc")
		require.NoError(t, err)
		assert.Equal(t, "sam@example.com", got.Email)
		assert.Equal(t, "Sam", got.FirstName)
		assert.Equal(t, "Student", got.LastName)
	})

	t.Run("異常系: エラーステータスはエラー", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewIdentityClient(config.IdentityConfig{APIURL: srv.URL, SecretKey: "sk_test", Timeout: time.Second})
		_, err := client.FetchProfile(ctx, "user_missing")
		assert.ErrorContains(t, err, "unexpected status 404")
	})

	t.Run("正常系: 設定が無ければ nil", func(t *testing.T) {
		assert.Nil(t, NewIdentityClient(config.IdentityConfig{}))
	})
}
