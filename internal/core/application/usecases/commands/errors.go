package commands

import "storefront/internal/pkg/errs"

var (
	ErrCartIsEmpty                 = errs.NewValueIsRequiredError("items")
	ErrMerchantPaymentIDIsRequired = errs.NewValueIsRequiredError("merchantPaymentId")
	ErrShipmentIDIsInvalid         = errs.NewValueIsInvalidError("shipmentId")
)
