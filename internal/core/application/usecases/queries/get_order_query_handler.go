package queries

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logger"
)

// GetOrderQueryHandler returns one order with its items and, best effort, the
// gateway's view of the payment. A gateway failure is logged and leaves
// OrderResponse.Gateway nil.
type GetOrderQueryHandler struct {
	reader  orderReader
	gateway ports.PaymentGateway
}

func NewGetOrderQueryHandler(db *gorm.DB, gateway ports.PaymentGateway) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: orderReader{db: db}, gateway: gateway}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	id := query.MerchantPaymentID().String()
	orders, err := h.reader.find(ctx, page{}, "p.merchant_payment_id = ?", id)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("merchantPaymentId", id)
	}

	order := orders[0]
	if !order.UserID.IsEqual(query.UserID()) {
		return OrderResponse{}, errs.NewUnauthorizedError("payment", id)
	}

	if h.gateway != nil {
		details, gwErr := h.gateway.GetPaymentDetails(ctx, id)
		if gwErr != nil {
			logger.FromContext(ctx).Warn("payment details unavailable",
				zap.String("merchant_payment_id", id), zap.Error(gwErr))
		}
		order.Gateway = details
	}

	return order, nil
}
