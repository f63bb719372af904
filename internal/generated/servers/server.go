package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Place an order and get a PayPay checkout URL
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// List the caller's orders, newest first
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// One of the caller's orders with the gateway's payment status
	// (GET /orders/{merchantPaymentId})
	GetOrder(ctx echo.Context, merchantPaymentId MerchantPaymentIdPath) error
	// Return target after paying with PayPay
	// (GET /payments/callback)
	PaymentCallback(ctx echo.Context, params PaymentCallbackParams) error
	// The caller's shipping address
	// (GET /me/address)
	GetAddress(ctx echo.Context) error
	// Create or replace the caller's shipping address
	// (PUT /me/address)
	UpsertAddress(ctx echo.Context) error
	// Every order, for fulfillment, one page at a time
	// (GET /admin/orders)
	ListAllOrders(ctx echo.Context, params ListAllOrdersParams) error
	// Move a shipment one step through its lifecycle
	// (PATCH /admin/shipments/{shipmentId}/status)
	UpdateShipmentStatus(ctx echo.Context, shipmentId int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateOrder(ctx)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var merchantPaymentId MerchantPaymentIdPath

	err := runtime.BindStyledParameterWithOptions("simple", "merchantPaymentId", ctx.Param("merchantPaymentId"),
		&merchantPaymentId, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter merchantPaymentId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetOrder(ctx, merchantPaymentId)
}

// PaymentCallback converts echo context to params.
func (w *ServerInterfaceWrapper) PaymentCallback(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params PaymentCallbackParams

	err := runtime.BindQueryParameter("form", true, true, "merchantPaymentId", ctx.QueryParams(), &params.MerchantPaymentId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter merchantPaymentId: %s", err))
	}

	return w.Handler.PaymentCallback(ctx, params)
}

// GetAddress converts echo context to params.
func (w *ServerInterfaceWrapper) GetAddress(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetAddress(ctx)
}

// UpsertAddress converts echo context to params.
func (w *ServerInterfaceWrapper) UpsertAddress(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpsertAddress(ctx)
}

// ListAllOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListAllOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params ListAllOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	return w.Handler.ListAllOrders(ctx, params)
}

// UpdateShipmentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateShipmentStatus(ctx echo.Context) error {
	var shipmentId int64

	err := runtime.BindStyledParameterWithOptions("simple", "shipmentId", ctx.Param("shipmentId"),
		&shipmentId, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter shipmentId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpdateShipmentStatus(ctx, shipmentId)
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.GET(baseURL+"/orders/:merchantPaymentId", wrapper.GetOrder)
	router.GET(baseURL+"/payments/callback", wrapper.PaymentCallback)
	router.GET(baseURL+"/me/address", wrapper.GetAddress)
	router.PUT(baseURL+"/me/address", wrapper.UpsertAddress)
	router.GET(baseURL+"/admin/orders", wrapper.ListAllOrders)
	router.PATCH(baseURL+"/admin/shipments/:shipmentId/status", wrapper.UpdateShipmentStatus)
}
