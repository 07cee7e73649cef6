package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/coursecast/coursecast/internal/domain"
)

// Client creates payment intents with the external payment gateway and
// verifies the signatures on its webhook callbacks.
type Client interface {
	CreateIntent(ctx context.Context, amount int64, userID string, videoID int, creatorID string) (*domain.PaymentIntent, error)
	VerifySignature(body []byte, signature string) bool
}

type httpClient struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

// NewClient creates a payment gateway client
func NewClient(baseURL, secretKey string) Client {
	return &httpClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		http:      &http.Client{Timeout: DefaultRequestTimeout},
	}
}

type intentRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	IdempotencyKey string            `json:"idempotency_key"`
	Metadata       map[string]string `json:"metadata"`
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
}

// CreateIntent asks the gateway for a payment intent covering the given
// amount. The metadata is echoed back on the settlement webhook, so it
// must carry everything Settle needs to validate the event.
func (c *httpClient) CreateIntent(ctx context.Context, amount int64, userID string, videoID int, creatorID string) (*domain.PaymentIntent, error) {
	reqBody := intentRequest{
		Amount:         amount,
		Currency:       "usd",
		IdempotencyKey: uuid.NewString(),
		Metadata: map[string]string{
			"user_id":    userID,
			"video_id":   fmt.Sprintf("%d", videoID),
			"creator_id": creatorID,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSendRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSendRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf(ErrMsgUnexpectedStatus, resp.StatusCode)
	}

	var intent intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeIntent, err)
	}

	return &domain.PaymentIntent{
		PaymentRef:   intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
	}, nil
}

// VerifySignature checks the hex HMAC-SHA256 the gateway puts on each
// webhook body. Comparison is constant time.
func (c *httpClient) VerifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
