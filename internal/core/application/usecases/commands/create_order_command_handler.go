package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logger"
)

// CreateOrderResult is what the caller needs to send the user to the gateway.
type CreateOrderResult struct {
	PaymentID         int64
	MerchantPaymentID string
	URL               string
}

// CreateOrderCommandHandler places an order: it writes the payment, its shipment
// and its line items in one transaction, then asks the gateway for a QR checkout URL.
//
// The gateway call happens after commit. When it fails the rows stay behind with
// no gateway-side counterpart, and the caller must retry with a new merchant
// payment id.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, gateway ports.PaymentGateway) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle returns:
//   - *errs.MissingAddressError when the user has no saved address
//   - *errs.ObjectNotFoundError when a cart product does not exist
//   - *errs.TransactionError when any write fails; nothing is persisted
//   - *errs.GatewayError when the gateway fails or returns no URL
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	log := logger.FromContext(ctx).With(zap.String("merchant_payment_id", cmd.MerchantPaymentID().String()))
	uow := h.uowFactory.Create()

	addr, err := uow.AddressRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CreateOrderResult{}, errs.NewMissingAddressError(cmd.UserID().String())
		}
		return CreateOrderResult{}, err
	}

	lines := cmd.Cart().Lines()
	products, err := uow.ProductRepository().GetByIDs(ctx, cmd.Cart().ProductIDs())
	if err != nil {
		return CreateOrderResult{}, err
	}

	paymentID, err := ExecuteTransaction(ctx, uow, func(ctx context.Context, uow OrderUoW) (int64, error) {
		return h.persistOrder(ctx, uow, cmd, addr, lines, products)
	})
	if err != nil {
		if errors.Is(err, errs.ErrTransaction) {
			return CreateOrderResult{}, err
		}
		return CreateOrderResult{}, errs.NewTransactionError(err)
	}
	log.Info("order persisted", zap.Int64("payment_id", paymentID), zap.Int("lines", len(lines)))

	code, err := h.gateway.CreateQRCode(ctx, qrCodeRequest(cmd.MerchantPaymentID(), lines, products))
	if err == nil && code.URL == "" {
		err = errs.NewGatewayError("createQRCode", 0, "EMPTY_URL")
	}
	if err != nil {
		log.Warn("gateway rejected a committed order; payment has no gateway counterpart",
			zap.Int64("payment_id", paymentID), zap.Error(err))
		if errors.Is(err, errs.ErrGateway) {
			return CreateOrderResult{}, err
		}
		return CreateOrderResult{}, errs.NewGatewayErrorWithCause("createQRCode", err)
	}

	return CreateOrderResult{
		PaymentID:         paymentID,
		MerchantPaymentID: cmd.MerchantPaymentID().String(),
		URL:               code.URL,
	}, nil
}

func (h *CreateOrderCommandHandler) persistOrder(
	ctx context.Context,
	uow OrderUoW,
	cmd CreateOrderCommand,
	addr *address.Address,
	lines []cart.Line,
	products map[int64]cart.Product,
) (int64, error) {
	p, err := payment.NewPayment(cmd.UserID(), cmd.MerchantPaymentID())
	if err != nil {
		return 0, err
	}
	paymentID, err := uow.PaymentRepository().Add(ctx, p)
	if err != nil {
		return 0, err
	}

	s, err := shipment.NewShipment(paymentID, addr.Snapshot())
	if err != nil {
		return 0, err
	}
	if _, err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return 0, err
	}

	items := make([]payment.LineItem, 0, len(lines))
	for _, line := range lines {
		item, itemErr := payment.NewLineItem(paymentID, line, products[line.ProductID()])
		if itemErr != nil {
			return 0, itemErr
		}
		items = append(items, item)
	}
	if err = uow.LineItemRepository().AddAll(ctx, items); err != nil {
		return 0, err
	}

	return paymentID, nil
}

func qrCodeRequest(id payment.MerchantPaymentID, lines []cart.Line, products map[int64]cart.Product) ports.QRCodeRequest {
	req := ports.QRCodeRequest{
		MerchantPaymentID: id.String(),
		Items:             make([]ports.QRCodeItem, 0, len(lines)),
	}
	for _, line := range lines {
		product := products[line.ProductID()]
		req.Items = append(req.Items, ports.QRCodeItem{
			ProductID: line.ProductID(),
			Name:      product.Name(),
			Quantity:  line.Quantity(),
			UnitPrice: product.Price(),
		})
	}
	return req
}
