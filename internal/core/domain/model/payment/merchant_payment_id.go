package payment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/pkg/errs"
)

// MaxMerchantPaymentIDLength is the longest id the gateway accepts.
const MaxMerchantPaymentIDLength = 64

var merchantPaymentIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// MerchantPaymentID is the idempotency key of one checkout attempt.
type MerchantPaymentID struct {
	value string
}

func NewMerchantPaymentID(raw string) (MerchantPaymentID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return MerchantPaymentID{}, errs.NewValueIsRequiredError("merchantPaymentId")
	}
	if len(raw) > MaxMerchantPaymentIDLength {
		return MerchantPaymentID{}, errs.NewValueIsInvalidErrorWithCause(
			"merchantPaymentId",
			fmt.Errorf("length %d exceeds %d", len(raw), MaxMerchantPaymentIDLength),
		)
	}
	if !merchantPaymentIDPattern.MatchString(raw) {
		return MerchantPaymentID{}, errs.NewValueIsInvalidErrorWithCause(
			"merchantPaymentId",
			fmt.Errorf("%q may only contain letters, digits, '-' and '_'", raw),
		)
	}
	return MerchantPaymentID{value: raw}, nil
}

// GenerateMerchantPaymentID returns a fresh random id for callers that do not bring their own.
func GenerateMerchantPaymentID() MerchantPaymentID {
	return MerchantPaymentID{value: uuid.NewString()}
}

func (id MerchantPaymentID) String() string {
	return id.value
}

func (id MerchantPaymentID) IsZero() bool {
	return id.value == ""
}

func (id MerchantPaymentID) IsEqual(other MerchantPaymentID) bool {
	return id.value == other.value
}
