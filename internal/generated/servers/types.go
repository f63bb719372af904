// Package servers holds the HTTP contract of the storefront API: request and
// response models, the ServerInterface implemented by the echo adapter, and
// the embedded OpenAPI document. Everything here mirrors openapi.yaml.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for ShipmentStatus.
const (
	ShipmentStatusCreated       ShipmentStatus = "created"
	ShipmentStatusShipped       ShipmentStatus = "shipped"
	ShipmentStatusDelivered     ShipmentStatus = "delivered"
	ShipmentStatusPaymentFailed ShipmentStatus = "payment_failed"
	ShipmentStatusCancelled     ShipmentStatus = "cancelled"
)

// Defines values for UpdateShipmentStatusRequestStatus.
const (
	UpdateShipmentStatusRequestStatusShipped       UpdateShipmentStatusRequestStatus = "shipped"
	UpdateShipmentStatusRequestStatusDelivered     UpdateShipmentStatusRequestStatus = "delivered"
	UpdateShipmentStatusRequestStatusPaymentFailed UpdateShipmentStatusRequestStatus = "payment_failed"
	UpdateShipmentStatusRequestStatusCancelled     UpdateShipmentStatusRequestStatus = "cancelled"
)

// Address defines model for Address.
type Address struct {
	Address    string `json:"address"`
	Country    string `json:"country"`
	Id         int64  `json:"id"`
	Name       string `json:"name"`
	PostalCode string `json:"postalCode"`
	Snapshot   string `json:"snapshot"`
}

// CartItem defines model for CartItem.
type CartItem struct {
	ProductId int64 `json:"productId" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"min=1,max=99"`
}

// CreateOrderRequest defines model for CreateOrderRequest.
type CreateOrderRequest struct {
	Items             []CartItem `json:"items" validate:"required,min=1,dive"`
	MerchantPaymentId *string    `json:"merchantPaymentId,omitempty" validate:"omitempty,max=64"`
}

// CreateOrderResponse defines model for CreateOrderResponse.
type CreateOrderResponse struct {
	MerchantPaymentId string `json:"merchantPaymentId"`
	Url               string `json:"url"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Money defines model for Money.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt         time.Time           `json:"createdAt"`
	Items             []OrderItem         `json:"items"`
	MerchantPaymentId string              `json:"merchantPaymentId"`
	Payment           *PaymentDetails     `json:"payment,omitempty"`
	Shipment          Shipment            `json:"shipment"`
	Total             Money               `json:"total"`
	UserId            *openapi_types.UUID `json:"userId,omitempty"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ProductId   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Subtotal    Money  `json:"subtotal"`
	UnitPrice   Money  `json:"unitPrice"`
}

// PaymentDetails defines model for PaymentDetails.
type PaymentDetails struct {
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	Amount      Money      `json:"amount"`
	RequestedAt time.Time  `json:"requestedAt"`
	Status      string     `json:"status"`
}

// Shipment defines model for Shipment.
type Shipment struct {
	Address         string         `json:"address"`
	AllowedActions  []string       `json:"allowedActions"`
	CancelledAt     *time.Time     `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	DeliveredAt     *time.Time     `json:"deliveredAt,omitempty"`
	Id              int64          `json:"id"`
	PaymentFailedAt *time.Time     `json:"paymentFailedAt,omitempty"`
	ShippedAt       *time.Time     `json:"shippedAt,omitempty"`
	Status          ShipmentStatus `json:"status"`
}

// ShipmentStatus defines model for Shipment.Status.
type ShipmentStatus string

// UpdateShipmentStatusRequest defines model for UpdateShipmentStatusRequest.
type UpdateShipmentStatusRequest struct {
	Status UpdateShipmentStatusRequestStatus `json:"status" validate:"required,oneof=shipped delivered payment_failed cancelled"`
}

// UpdateShipmentStatusRequestStatus defines model for UpdateShipmentStatusRequest.Status.
type UpdateShipmentStatusRequestStatus string

// UpdateShipmentStatusResponse defines model for UpdateShipmentStatusResponse.
type UpdateShipmentStatusResponse struct {
	AllowedActions []string `json:"allowedActions"`
	From           string   `json:"from"`
	ShipmentId     int64    `json:"shipmentId"`
	To             string   `json:"to"`
}

// UpsertAddressRequest defines model for UpsertAddressRequest.
type UpsertAddressRequest struct {
	Address    string `json:"address" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Name       string `json:"name" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
}

// Limit defines model for Limit.
type Limit = int

// Offset defines model for Offset.
type Offset = int

// MerchantPaymentIdPath defines model for MerchantPaymentIdPath.
type MerchantPaymentIdPath = string

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	// Limit Page size, 50 when omitted
	Limit *Limit `form:"limit,omitempty" json:"limit,omitempty"`

	Offset *Offset `form:"offset,omitempty" json:"offset,omitempty"`
}

// ListAllOrdersParams defines parameters for ListAllOrders.
type ListAllOrdersParams struct {
	// Limit Page size, 50 when omitted
	Limit *Limit `form:"limit,omitempty" json:"limit,omitempty"`

	Offset *Offset `form:"offset,omitempty" json:"offset,omitempty"`
}

// PaymentCallbackParams defines parameters for PaymentCallback.
type PaymentCallbackParams struct {
	MerchantPaymentId string `form:"merchantPaymentId" json:"merchantPaymentId"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = CreateOrderRequest

// UpsertAddressJSONRequestBody defines body for UpsertAddress for application/json ContentType.
type UpsertAddressJSONRequestBody = UpsertAddressRequest

// UpdateShipmentStatusJSONRequestBody defines body for UpdateShipmentStatus for application/json ContentType.
type UpdateShipmentStatusJSONRequestBody = UpdateShipmentStatusRequest
