package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. It also acts as the
// OrderDirectory consumed by the user service; the user-side capability it
// needs arrives through BindUserDirectory after construction.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	users     usecase.UserDirectory
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// BindUserDirectory wires in the user-side capability. Called exactly once
// during startup, before the server accepts requests.
func (srv *orderService) BindUserDirectory(dir usecase.UserDirectory) {
	srv.users = dir
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a new order for an existing user. The owner must exist
// at creation time; the store's foreign key backs this up for races.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("userID", input.UserID))

	if srv.users == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "user directory not bound")
	}

	if _, err := srv.users.GetUserByID(ctx, input.UserID); err != nil {
		srv.log(ctx).Warn("Order owner lookup failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "order owner lookup failed")
	}

	newOrder := &entity.Order{
		UserID:  input.UserID,
		Product: input.Product,
	}

	if err := srv.orderRepo.Create(ctx, newOrder); err != nil {
		srv.log(ctx).Warn("Failed to create order", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.publishEvent(ctx, service.OrderEventCreated, newOrder)

	return newOrder, nil
}

// GetOrder retrieves a single order. The order is only served when its owner
// still exists; an orphaned row reads as not found.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if srv.users == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "user directory not bound")
	}

	order, err := srv.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := srv.users.GetUserByID(ctx, order.UserID); err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.log(ctx).Warn("Order owner no longer exists", slog.Any("orderID", id), slog.Any("userID", order.UserID))

			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order owner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to verify order owner")
	}

	return order, nil
}

// findOrder fetches an order by ID, translating the repository's not-found
// error into the domain error.
func (srv *orderService) findOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return order, nil
}

// ListOrders retrieves all orders.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListOrdersByUser retrieves all orders owned by the given user. Also
// satisfies usecase.OrderDirectory for the user service.
func (srv *orderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders by user", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return orders, nil
}

// UpdateOrder applies the given changes to an existing order. An attempt to
// reassign the owner is rejected before anything is written; the read and
// write share one transaction so the check cannot race a concurrent update.
func (srv *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Updating order", slog.Any("orderID", id))

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
			}

			return errors.Wrap(err, "failed to find order by id")
		}

		if input.UserID != nil && *input.UserID != order.UserID {
			srv.log(ctx).Warn("Rejected owner change", slog.Any("orderID", id), slog.Any("requestedUserID", *input.UserID))

			return errors.Wrap(domainerrors.ErrOwnerImmutable, "order owner reassignment rejected")
		}

		if input.Product != nil {
			order.Product = *input.Product
		}

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		updated = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute order update transaction", slog.Any("orderID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteOrder removes an order by ID. Deleting an unknown order is an error,
// not a silent no-op.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting order", slog.Any("orderID", id))

	var deleted *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order delete failed")
			}

			return errors.Wrap(err, "failed to find order by id")
		}

		if err := orderRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order delete failed")
			}

			return errors.Wrap(err, "failed to delete order")
		}

		deleted = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute order delete transaction", slog.Any("orderID", id), slog.Any("error", err))

		return err
	}

	srv.publishEvent(ctx, service.OrderEventDeleted, deleted)

	return nil
}

// publishEvent emits an order lifecycle event. Publishing is best effort:
// a broker hiccup must not fail the request that already committed.
func (srv *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Product:    order.Product,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}
