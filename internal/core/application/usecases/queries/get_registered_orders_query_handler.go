package queries

import "context"

type GetRegisteredOrdersQueryHandler struct {
	pools PoolReader
}

func NewGetRegisteredOrdersQueryHandler(pools PoolReader) GetRegisteredOrdersQueryHandler {
	return GetRegisteredOrdersQueryHandler{pools: pools}
}

func (h GetRegisteredOrdersQueryHandler) Handle(ctx context.Context, query GetRegisteredOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.pools.RegisteredOrders(ctx)
	if err != nil {
		return nil, err
	}
	return toViews(orders), nil
}
