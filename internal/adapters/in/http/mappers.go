package http

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/generated/servers"
)

func toOrder(o queries.OrderResponse, includeUser bool) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = servers.OrderItem{
			ProductId:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   toMoney(it.UnitPrice),
			Subtotal:    toMoney(it.Subtotal),
		}
	}

	out := servers.Order{
		MerchantPaymentId: o.MerchantPaymentID,
		CreatedAt:         o.CreatedAt,
		Items:             items,
		Total:             toMoney(o.Total),
		Shipment: servers.Shipment{
			Id:              o.Shipment.ID,
			Address:         o.Shipment.Address,
			Status:          servers.ShipmentStatus(o.Shipment.State.String()),
			AllowedActions:  actionNames(o.Shipment.AllowedActions),
			ShippedAt:       o.Shipment.ShippedAt,
			DeliveredAt:     o.Shipment.DeliveredAt,
			PaymentFailedAt: o.Shipment.PaymentFailedAt,
			CancelledAt:     o.Shipment.CancelledAt,
			CreatedAt:       o.Shipment.CreatedAt,
		},
	}

	if includeUser {
		userID := openapi_types.UUID(o.UserID.Google())
		out.UserId = &userID
	}

	if o.Gateway != nil {
		out.Payment = &servers.PaymentDetails{
			Status:      o.Gateway.Status,
			Amount:      toMoney(o.Gateway.Amount),
			RequestedAt: o.Gateway.RequestedAt,
			AcceptedAt:  o.Gateway.AcceptedAt,
		}
	}
	return out
}

func toMoney(m kernel.Money) servers.Money {
	return servers.Money{Amount: m.Amount(), Currency: m.Currency()}
}

func actionNames(actions []shipment.Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return names
}
