package queries

import "context"

type GetPendingOrdersQueryHandler struct {
	pools PoolReader
}

func NewGetPendingOrdersQueryHandler(pools PoolReader) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{pools: pools}
}

func (h GetPendingOrdersQueryHandler) Handle(ctx context.Context, query GetPendingOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.pools.PendingOrders(ctx)
	if err != nil {
		return nil, err
	}
	return toViews(orders), nil
}
