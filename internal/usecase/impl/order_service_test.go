package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	users     *mockUC.MockUserDirectory
	publisher *mockSvc.MockEventPublisher
}

func newOrderServiceForTest(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	mocks := &orderServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		users:     mockUC.NewMockUserDirectory(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewOrderService(OrderServiceParams{
		TxManager: mocks.txManager,
		OrderRepo: mocks.orderRepo,
		Publisher: mocks.publisher,
		Logger:    testLogger(),
	})
	svc.(usecase.UserDirectoryBinder).BindUserDirectory(mocks.users)

	return svc, mocks
}

// passThroughTx makes the mocked transaction manager run the callback with a
// factory that hands back the same order repository mock.
func passThroughTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.users.EXPECT().
		GetUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			assert.Equal(t, userID, order.UserID)
			assert.Equal(t, "keyboard", order.Product)
			order.ID = uuid.New()
		}).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventCreated, event.EventType)
			assert.Equal(t, userID, event.UserID)
		}).
		Return(nil)

	order, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID:  userID,
		Product: "keyboard",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.NotEqual(t, uuid.Nil, order.ID)
}

func TestOrderService_CreateOrder_MissingOwner(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.users.EXPECT().
		GetUserByID(ctx, userID).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed"))

	order, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID:  userID,
		Product: "keyboard",
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

// A broker failure after the write committed must not fail the request.
func TestOrderService_CreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.users.EXPECT().
		GetUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	order, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID:  userID,
		Product: "keyboard",
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_GetOrder(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Product: "keyboard"}, nil)

	mocks.users.EXPECT().
		GetUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	order, err := svc.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_GetOrder_OwnerGone(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)

	mocks.users.EXPECT().
		GetUserByID(ctx, userID).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed"))

	order, err := svc.GetOrder(ctx, orderID)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrdersByUser_Empty(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.orderRepo.EXPECT().
		ListByUser(ctx, userID).
		Return([]*entity.Order{}, nil)

	orders, err := svc.ListOrdersByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateOrder_ProductChange(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(mocks.orderRepo)
	passThroughTx(mocks.txManager, factory)

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Product: "keyboard"}, nil)

	mocks.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			assert.Equal(t, "trackball", order.Product)
			assert.Equal(t, userID, order.UserID)
		}).
		Return(nil)

	newProduct := "trackball"
	order, err := svc.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{Product: &newProduct})
	require.NoError(t, err)
	assert.Equal(t, "trackball", order.Product)
}

// Reassigning the owner must be rejected after the read but before any
// write; Update is never called.
func TestOrderService_UpdateOrder_OwnerChangeRejected(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()
	otherUserID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(mocks.orderRepo)
	passThroughTx(mocks.txManager, factory)

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: ownerID, Product: "keyboard"}, nil)

	newProduct := "trackball"
	order, err := svc.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{
		UserID:  &otherUserID,
		Product: &newProduct,
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOwnerImmutable)
	mocks.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// Restating the current owner is not a change and passes.
func TestOrderService_UpdateOrder_SameOwnerAccepted(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(mocks.orderRepo)
	passThroughTx(mocks.txManager, factory)

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: ownerID, Product: "keyboard"}, nil)

	mocks.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	newProduct := "trackball"
	order, err := svc.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{
		UserID:  &ownerID,
		Product: &newProduct,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, order.UserID)
}

func TestOrderService_UpdateOrder_NotFound(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(mocks.orderRepo)
	passThroughTx(mocks.txManager, factory)

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	newProduct := "trackball"
	order, err := svc.UpdateOrder(ctx, orderID, &usecase.UpdateOrderInput{Product: &newProduct})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(mocks.orderRepo)
	passThroughTx(mocks.txManager, factory)

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Product: "keyboard"}, nil)

	mocks.orderRepo.EXPECT().
		Delete(ctx, orderID).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventDeleted, event.EventType)
			assert.Equal(t, orderID, event.OrderID)
		}).
		Return(nil)

	err := svc.DeleteOrder(ctx, orderID)
	require.NoError(t, err)
}

// Deleting an order that never existed reports not-found, not success.
func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(mocks.orderRepo)
	passThroughTx(mocks.txManager, factory)

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	err := svc.DeleteOrder(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	mocks.orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
