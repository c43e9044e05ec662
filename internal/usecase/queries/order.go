package queries

import (
	"context"

	"seckill-service/internal/domain/auth"
	"seckill-service/internal/domain/order"
	"seckill-service/internal/infra"
	"seckill-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order belongs to another user")
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uint64) (*OrderView, error)
}

type OrderQueries interface {
	// GetOrder returns the persisted order. Admitted orders still in the queue
	// are reported as not found until the persister has written them.
	GetOrder(ctx context.Context, id order.ID, actorID uuid.UUID, actorRole auth.Role) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, id order.ID, actorID uuid.UUID, actorRole auth.Role) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, uint64(id))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if view.UserID != actorID && actorRole != auth.RoleAdmin && actorRole != auth.RoleOperator {
		return nil, ErrOrderAccess
	}
	return view, nil
}
