package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/pkg/logger"
)

// UpdateShipmentStatusResult describes the shipment after the transition.
type UpdateShipmentStatusResult struct {
	ShipmentID     int64
	From           shipment.State
	To             shipment.State
	AllowedActions []shipment.Action
}

// UpdateShipmentStatusCommandHandler moves a shipment one step through its lifecycle.
//
// The current state is derived from the stored timestamps, the pair is checked
// with shipment.Transition, and the write is a conditional UPDATE that restates
// the source state. An action that became illegal between read and write
// therefore fails with *errs.IllegalTransitionError instead of overwriting.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        func() time.Time
}

func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (UpdateShipmentStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateShipmentStatusResult{}, err
	}

	result, err := ExecuteTransaction(ctx, h.uowFactory.Create(),
		func(ctx context.Context, uow ShipmentUoW) (UpdateShipmentStatusResult, error) {
			repo := uow.ShipmentRepository()

			s, err := repo.Get(ctx, cmd.ShipmentID())
			if err != nil {
				return UpdateShipmentStatusResult{}, err
			}

			from := s.State()
			at := h.now().UTC()
			if err = s.Apply(cmd.Action(), at); err != nil {
				return UpdateShipmentStatusResult{}, err
			}
			if err = repo.Transition(ctx, s.ID(), from, cmd.Action(), at); err != nil {
				return UpdateShipmentStatusResult{}, err
			}

			return UpdateShipmentStatusResult{
				ShipmentID:     s.ID(),
				From:           from,
				To:             s.State(),
				AllowedActions: s.AllowedActions(),
			}, nil
		})
	if err != nil {
		return UpdateShipmentStatusResult{}, err
	}

	logger.FromContext(ctx).Info("shipment status updated",
		zap.Int64("shipment_id", result.ShipmentID),
		zap.Stringer("from", result.From),
		zap.Stringer("to", result.To))
	return result, nil
}
