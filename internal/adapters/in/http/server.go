// Package http is the storefront's echo adapter. Server implements
// servers.ServerInterface on top of the command and query handlers.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"
)

var _ servers.ServerInterface = (*Server)(nil)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	UpdateShipmentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateShipmentStatusCommand) (commands.UpdateShipmentStatusResult, error)
	}

	UpsertAddressHandler interface {
		Handle(ctx context.Context, cmd commands.UpsertAddressCommand) (*address.Address, error)
	}

	PaymentCallbackHandler interface {
		Handle(ctx context.Context, query queries.HandlePaymentCallbackQuery) (queries.HandlePaymentCallbackQueryResponse, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}

	GetAddressHandler interface {
		Handle(ctx context.Context, query queries.GetAddressQuery) (queries.GetAddressQueryResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          CreateOrderHandler
	updateShipmentStatusHandler UpdateShipmentStatusHandler
	upsertAddressHandler        UpsertAddressHandler

	// Query handlers
	paymentCallbackHandler PaymentCallbackHandler
	getOrderHandler        GetOrderHandler
	listOrdersHandler      ListOrdersHandler
	getAddressHandler      GetAddressHandler
}

func NewServer(
	createOrderHandler CreateOrderHandler,
	updateShipmentStatusHandler UpdateShipmentStatusHandler,
	upsertAddressHandler UpsertAddressHandler,
	paymentCallbackHandler PaymentCallbackHandler,
	getOrderHandler GetOrderHandler,
	listOrdersHandler ListOrdersHandler,
	getAddressHandler GetAddressHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		upsertAddressHandler:        upsertAddressHandler,
		paymentCallbackHandler:      paymentCallbackHandler,
		getOrderHandler:             getOrderHandler,
		listOrdersHandler:           listOrdersHandler,
		getAddressHandler:           getAddressHandler,
	}
}

// CreateOrder handles POST /api/v1/orders. Without a merchantPaymentId in the
// body a fresh one is generated.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.CreateOrderJSONRequestBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return respondError(ctx, err)
	}

	c, err := toCart(body.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	merchantPaymentID := payment.GenerateMerchantPaymentID()
	if body.MerchantPaymentId != nil && *body.MerchantPaymentId != "" {
		if merchantPaymentID, err = payment.NewMerchantPaymentID(*body.MerchantPaymentId); err != nil {
			return respondError(ctx, err)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(principal.UserID, c, merchantPaymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreateOrderResponse{
		MerchantPaymentId: result.MerchantPaymentID,
		Url:               result.URL,
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	limit, offset := pageParams(params.Limit, params.Offset)
	query, err := queries.NewListOrdersQuery(principal.UserID, limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.listOrders(ctx, query)
}

// GetOrder handles GET /api/v1/orders/{merchantPaymentId}.
func (s *Server) GetOrder(ctx echo.Context, merchantPaymentId servers.MerchantPaymentIdPath) error {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(merchantPaymentId, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(order, false))
}

// PaymentCallback handles GET /api/v1/payments/callback, where PayPay sends
// the buyer after paying. It redirects to the order result page.
func (s *Server) PaymentCallback(ctx echo.Context, params servers.PaymentCallbackParams) error {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewHandlePaymentCallbackQuery(params.MerchantPaymentId, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.paymentCallbackHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Redirect(http.StatusFound, resp.RedirectTo)
}

// GetAddress handles GET /api/v1/me/address.
func (s *Server) GetAddress(ctx echo.Context) error {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAddressQuery(principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	addr, err := s.getAddressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Address{
		Id:         addr.ID,
		Name:       addr.Name,
		Country:    addr.Country,
		PostalCode: addr.PostalCode,
		Address:    addr.Address,
		Snapshot:   addr.Snapshot,
	})
}

// UpsertAddress handles PUT /api/v1/me/address.
func (s *Server) UpsertAddress(ctx echo.Context) error {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.UpsertAddressJSONRequestBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpsertAddressCommand(principal.UserID, body.Name, body.Country, body.PostalCode, body.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	addr, err := s.upsertAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Address{
		Id:         addr.ID(),
		Name:       addr.Name(),
		Country:    addr.Country(),
		PostalCode: addr.PostalCode(),
		Address:    addr.Line(),
		Snapshot:   addr.Snapshot(),
	})
}

// ListAllOrders handles GET /api/v1/admin/orders.
func (s *Server) ListAllOrders(ctx echo.Context, params servers.ListAllOrdersParams) error {
	if _, err := requireAdmin(ctx); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListAllOrdersQuery(pageParams(params.Limit, params.Offset))
	if err != nil {
		return respondError(ctx, err)
	}

	return s.listOrders(ctx, query)
}

// UpdateShipmentStatus handles PATCH /api/v1/admin/shipments/{shipmentId}/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context, shipmentId int64) error {
	if _, err := requireAdmin(ctx); err != nil {
		return respondError(ctx, err)
	}

	var body servers.UpdateShipmentStatusJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentId, string(body.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UpdateShipmentStatusResponse{
		ShipmentId:     result.ShipmentID,
		From:           result.From.String(),
		To:             result.To.String(),
		AllowedActions: actionNames(result.AllowedActions),
	})
}

func (s *Server) listOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	includeUser := query.UserID() == nil
	response := make([]servers.Order, len(orders))
	for i, order := range orders {
		response[i] = toOrder(order, includeUser)
	}
	return ctx.JSON(http.StatusOK, response)
}

// pageParams turns absent paging parameters into zeros, which the query reads
// as the first default-sized page.
func pageParams(limit, offset *int) (int, int) {
	var l, o int
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	return l, o
}

func requirePrincipal(ctx echo.Context) (Principal, error) {
	principal, ok := PrincipalFrom(ctx)
	if !ok {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, ErrMissingToken.Error())
	}
	return principal, nil
}

func requireAdmin(ctx echo.Context) (Principal, error) {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return Principal{}, err
	}
	if !principal.Admin {
		return Principal{}, errs.NewUnauthorizedError("admin", principal.UserID.String())
	}
	return principal, nil
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

func toCart(items []servers.CartItem) (cart.Cart, error) {
	lines := make([]cart.Line, 0, len(items))
	for _, item := range items {
		line, err := cart.NewLine(item.ProductId, item.Quantity)
		if err != nil {
			return cart.Cart{}, err
		}
		lines = append(lines, line)
	}
	return cart.NewCart(lines)
}
