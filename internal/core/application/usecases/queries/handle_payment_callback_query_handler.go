package queries

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/core/domain/model/payment"
	"storefront/internal/pkg/logger"
)

// MerchantPaymentIDPlaceholder is replaced by the escaped merchant payment id in
// the result page template.
const MerchantPaymentIDPlaceholder = "{merchantPaymentId}"

// PaymentFinder is the single read the callback needs.
type PaymentFinder interface {
	GetByMerchantPaymentID(ctx context.Context, id payment.MerchantPaymentID) (*payment.Payment, error)
}

// HandlePaymentCallbackQueryHandler resolves the gateway callback to the order
// result page after checking that the signed-in user owns the payment.
type HandlePaymentCallbackQueryHandler struct {
	payments           PaymentFinder
	resultPathTemplate string
}

// NewHandlePaymentCallbackQueryHandler takes the result page path, for example
// "/orders/{merchantPaymentId}/result".
func NewHandlePaymentCallbackQueryHandler(
	payments PaymentFinder,
	resultPathTemplate string,
) HandlePaymentCallbackQueryHandler {
	return HandlePaymentCallbackQueryHandler{
		payments:           payments,
		resultPathTemplate: resultPathTemplate,
	}
}

// Handle returns *errs.ObjectNotFoundError for an unknown id and
// *errs.UnauthorizedError when another user owns the payment.
func (h HandlePaymentCallbackQueryHandler) Handle(
	ctx context.Context,
	query HandlePaymentCallbackQuery,
) (HandlePaymentCallbackQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return HandlePaymentCallbackQueryResponse{}, err
	}

	p, err := h.payments.GetByMerchantPaymentID(ctx, query.MerchantPaymentID())
	if err != nil {
		return HandlePaymentCallbackQueryResponse{}, err
	}

	if err = p.CheckOwner(query.UserID()); err != nil {
		logger.FromContext(ctx).Warn("payment callback from a user who does not own the payment",
			zap.String("merchant_payment_id", query.MerchantPaymentID().String()),
			zap.String("user_id", query.UserID().String()))
		return HandlePaymentCallbackQueryResponse{}, err
	}

	id := p.MerchantPaymentID().String()
	return HandlePaymentCallbackQueryResponse{
		MerchantPaymentID: id,
		RedirectTo:        strings.ReplaceAll(h.resultPathTemplate, MerchantPaymentIDPlaceholder, url.PathEscape(id)),
	}, nil
}
