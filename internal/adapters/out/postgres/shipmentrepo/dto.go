// Package shipmentrepo persists shipments. The shipment state is never stored:
// it is derived from the four status timestamps on every read.
package shipmentrepo

import (
	"time"

	"storefront/internal/core/domain/model/shipment"
)

type ShipmentDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	PaypayPaymentID int64 `gorm:"uniqueIndex"`
	Address         string
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	PaymentFailedAt *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	ts := s.Timestamps()
	return ShipmentDTO{
		ID:              s.ID(),
		PaypayPaymentID: s.PaymentID(),
		Address:         s.Address(),
		ShippedAt:       ts.ShippedAt,
		DeliveredAt:     ts.DeliveredAt,
		PaymentFailedAt: ts.PaymentFailedAt,
		CancelledAt:     ts.CancelledAt,
		CreatedAt:       s.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	return shipment.RestoreShipment(dto.ID, dto.PaypayPaymentID, dto.Address, shipment.Timestamps{
		ShippedAt:       dto.ShippedAt,
		DeliveredAt:     dto.DeliveredAt,
		PaymentFailedAt: dto.PaymentFailedAt,
		CancelledAt:     dto.CancelledAt,
	}, dto.CreatedAt)
}
