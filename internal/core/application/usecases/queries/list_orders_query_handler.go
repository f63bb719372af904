package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists one page of orders, newest first. Each shipment
// carries its derived state and the actions currently legal from it, which is
// what the admin console offers as buttons.
type ListOrdersQueryHandler struct {
	reader orderReader
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: orderReader{db: db}}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	paging := page{limit: query.Limit(), offset: query.Offset()}
	if userID := query.UserID(); userID != nil {
		return h.reader.find(ctx, paging, "p.user_id = ?", userID.String())
	}
	return h.reader.find(ctx, paging, "TRUE")
}
