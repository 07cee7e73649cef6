package gateway

import "time"

// Client defaults
const (
	DefaultRequestTimeout = 10 * time.Second

	// SignatureHeader carries the gateway's HMAC over the webhook body
	SignatureHeader = "X-Gateway-Signature"
)

// Error Messages
const (
	ErrMsgFailedToEncodeRequest = "failed to encode intent request"
	ErrMsgFailedToSendRequest   = "failed to send intent request"
	ErrMsgUnexpectedStatus      = "unexpected gateway status %d"
	ErrMsgFailedToDecodeIntent  = "failed to decode intent response"
)
