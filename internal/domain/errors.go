package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Catalog errors
	ErrMsgVideoNotFound     = "video not found"
	ErrMsgVideoUnpublished  = "video is not published"
	ErrMsgCategoryNotFound  = "category not found"
	ErrMsgTierUnknown       = "unknown monetization tier"

	// Purchase/settlement errors
	ErrMsgAlreadyPurchased   = "course already purchased"
	ErrMsgNotPlatformSettled = "tier is not settled through the platform"
	ErrMsgPriceNotSet        = "video has no price"

	// Entitlement errors
	ErrMsgNotEntitled = "not entitled to this video"

	// Engagement errors
	ErrMsgCommentNotFound  = "comment not found"
	ErrMsgAlreadyFavorited = "video already in favorites"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Catalog errors
	ErrVideoNotFound    = errors.New(ErrMsgVideoNotFound)
	ErrVideoUnpublished = errors.New(ErrMsgVideoUnpublished)
	ErrCategoryNotFound = errors.New(ErrMsgCategoryNotFound)
	ErrTierUnknown      = errors.New(ErrMsgTierUnknown)

	// Purchase/settlement errors
	ErrAlreadyPurchased   = errors.New(ErrMsgAlreadyPurchased)
	ErrNotPlatformSettled = errors.New(ErrMsgNotPlatformSettled)
	ErrPriceNotSet        = errors.New(ErrMsgPriceNotSet)

	// Entitlement errors
	ErrNotEntitled = errors.New(ErrMsgNotEntitled)

	// Engagement errors
	ErrCommentNotFound  = errors.New(ErrMsgCommentNotFound)
	ErrAlreadyFavorited = errors.New(ErrMsgAlreadyFavorited)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
