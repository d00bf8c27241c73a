package domain

import "github.com/cockroachdb/errors"

var (
	// ErrRecipientNotFound means the target chat does not exist or the bot cannot write to it
	ErrRecipientNotFound = errors.New("recipient chat not found")
	// ErrDeliveryFailed covers every other platform delivery failure
	ErrDeliveryFailed = errors.New("delivery failed")
	// ErrDocumentUnavailable means a course has no descriptive document configured
	ErrDocumentUnavailable = errors.New("document unavailable")
	// ErrRequisitesNotFound means the course/currency pair is not in the catalog
	ErrRequisitesNotFound = errors.New("requisites not found")
)
