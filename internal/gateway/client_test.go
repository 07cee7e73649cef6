package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var req intentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(5000), req.Amount)
		assert.Equal(t, "user-1", req.Metadata["user_id"])
		assert.Equal(t, "7", req.Metadata["video_id"])
		assert.Equal(t, "creator-1", req.Metadata["creator_id"])
		assert.NotEmpty(t, req.IdempotencyKey)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(intentResponse{
			ID:           "pay_abc",
			ClientSecret: "pay_abc_secret",
			Amount:       req.Amount,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test")

	intent, err := client.CreateIntent(context.Background(), 5000, "user-1", 7, "creator-1")
	require.NoError(t, err)
	assert.Equal(t, "pay_abc", intent.PaymentRef)
	assert.Equal(t, "pay_abc_secret", intent.ClientSecret)
	assert.Equal(t, int64(5000), intent.Amount)
}

func TestCreateIntent_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test")

	_, err := client.CreateIntent(context.Background(), 5000, "user-1", 7, "creator-1")
	assert.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	client := NewClient("http://unused", "whsec_test")
	body := []byte(`{"payment_ref":"pay_1"}`)

	mac := hmac.New(sha256.New, []byte("whsec_test"))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifySignature(body, valid))
	assert.False(t, client.VerifySignature(body, "deadbeef"))
	assert.False(t, client.VerifySignature([]byte(`tampered`), valid))
}
