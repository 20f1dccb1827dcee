package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopperServiceFixtures struct {
	service     *shopperService
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	core        realCore
}

func createTestShopperService(t *testing.T) shopperServiceFixtures {
	core := newRealCore(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	srv := NewShopperService(ShopperServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		Hasher:      core.hasher,
		Policy:      core.policy,
		Codec:       core.codec,
		Config:      core.config,
		Logger:      newDiscardLogger(),
	}).(*shopperService)

	return shopperServiceFixtures{
		service:     srv,
		txManager:   txManager,
		userRepo:    userRepo,
		productRepo: productRepo,
		core:        core,
	}
}

func (fx shopperServiceFixtures) intent(t *testing.T, principal *entity.Principal, input *usecase.IssueIntentInput) string {
	t.Helper()

	out, err := fx.service.IssueIntent(context.Background(), principal, input)
	require.NoError(t, err)

	claims, err := fx.core.codec.Validate(out.Token)
	require.NoError(t, err)
	require.True(t, claims.ExpiresAt.Equal(out.ExpiresAt), "reported %s, token %s", out.ExpiresAt, claims.ExpiresAt)

	return out.Token
}

// A change-password intent for a credential hashed from "A" leaves a credential that verifies "B" only.
func TestShopperService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	fx := createTestShopperService(t)
	principal := &entity.Principal{UserID: 5}

	stored, err := fx.core.hasher.Hash("A")
	require.NoError(t, err)

	token := fx.intent(t, principal, &usecase.IssueIntentInput{
		Intent:      entity.IntentChangePassword,
		OldPassword: "A",
		NewPassword: "B",
	})

	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.User{ID: 5, PasswordHash: stored}, nil)

	var replaced string
	fx.userRepo.EXPECT().UpdatePasswordHash(ctx, int64(5), mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ int64, passwordHash string) { replaced = passwordHash }).
		Return(nil)

	require.NoError(t, fx.service.ChangePassword(ctx, principal, token))
	assert.True(t, fx.core.hasher.Verify(replaced, "B"))
	assert.False(t, fx.core.hasher.Verify(replaced, "A"))
	assert.NotEqual(t, stored, replaced)
}

func TestShopperService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	ctx := context.Background()
	fx := createTestShopperService(t)
	principal := &entity.Principal{UserID: 5}

	stored, err := fx.core.hasher.Hash("actual")
	require.NoError(t, err)
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.User{ID: 5, PasswordHash: stored}, nil)

	token := fx.intent(t, principal, &usecase.IssueIntentInput{
		Intent:      entity.IntentChangePassword,
		OldPassword: "guess",
		NewPassword: "B",
	})

	err = fx.service.ChangePassword(ctx, principal, token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCurrentPassword)
}

func TestShopperService_IntentBinding(t *testing.T) {
	ctx := context.Background()
	fx := createTestShopperService(t)
	alice := &entity.Principal{UserID: 1}
	bob := &entity.Principal{UserID: 2}

	changeForAlice := fx.intent(t, alice, &usecase.IssueIntentInput{
		Intent:      entity.IntentChangePassword,
		OldPassword: "A",
		NewPassword: "B",
	})

	identity, _, err := fx.core.codec.Issue(map[string]string{entity.ClaimUserID: "1"}, time.Minute)
	require.NoError(t, err)

	noOld, _, err := fx.core.codec.Issue(map[string]string{
		entity.ClaimIntent:      string(entity.IntentChangePassword),
		entity.ClaimUserID:      "1",
		entity.ClaimNewPassword: "B",
	}, time.Minute)
	require.NoError(t, err)

	t.Run("other subject", func(t *testing.T) {
		err := fx.service.ChangePassword(ctx, bob, changeForAlice)
		assert.ErrorIs(t, err, domainerrors.ErrIntentSubjectMismatch)
	})

	t.Run("wrong operation", func(t *testing.T) {
		err := fx.service.CancelOrder(ctx, alice, changeForAlice)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTokenPayload)
	})

	t.Run("identity token is not an intent", func(t *testing.T) {
		err := fx.service.ChangePassword(ctx, alice, identity)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTokenPayload)
	})

	t.Run("missing claim", func(t *testing.T) {
		err := fx.service.ChangePassword(ctx, alice, noOld)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTokenPayload)
	})

	t.Run("empty token", func(t *testing.T) {
		err := fx.service.ChangePassword(ctx, alice, "")
		assert.ErrorIs(t, err, domainerrors.ErrTokenRequired)
	})

	t.Run("forged token", func(t *testing.T) {
		err := fx.service.ChangePassword(ctx, alice, changeForAlice+"x")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidTokenPayload)
	})
}

func TestShopperService_IssueIntent_Validation(t *testing.T) {
	fx := createTestShopperService(t)
	principal := &entity.Principal{UserID: 1}

	inputs := map[string]*usecase.IssueIntentInput{
		"change without new":   {Intent: entity.IntentChangePassword, OldPassword: "A"},
		"order without items":  {Intent: entity.IntentCreateOrder},
		"order zero quantity":  {Intent: entity.IntentCreateOrder, Items: []entity.OrderItem{{ProductID: 1}}},
		"cancel without order": {Intent: entity.IntentCancelOrder},
		"unknown intent":       {Intent: "delete-everything"},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := fx.service.IssueIntent(context.Background(), principal, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestShopperService_CreateOrder(t *testing.T) {
	ctx := context.Background()
	fx := createTestShopperService(t)
	principal := &entity.Principal{UserID: 3}

	token := fx.intent(t, principal, &usecase.IssueIntentInput{
		Intent: entity.IntentCreateOrder,
		Items: []entity.OrderItem{
			{ProductID: 10, Quantity: 2},
			{ProductID: 11, Quantity: 1},
		},
	})

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(fx.txManager, factory)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	productRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Product{ID: 10, Price: 2.5, Stock: 5}, nil)
	productRepo.EXPECT().DecrementStock(ctx, int64(10), 2).Return(nil)
	productRepo.EXPECT().FindByID(ctx, int64(11)).Return(&entity.Product{ID: 11, Price: 4, Stock: 1}, nil)
	productRepo.EXPECT().DecrementStock(ctx, int64(11), 1).Return(nil)
	orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = 77 }).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, principal, token)

	require.NoError(t, err)
	assert.Equal(t, int64(77), order.ID)
	assert.Equal(t, int64(3), order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.InDelta(t, 9.0, order.TotalPrice, 0.0001)
	require.Len(t, order.Details, 2)
	assert.InDelta(t, 5.0, order.Details[0].Price, 0.0001)
}

func TestShopperService_CreateOrder_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	fx := createTestShopperService(t)
	principal := &entity.Principal{UserID: 3}

	token := fx.intent(t, principal, &usecase.IssueIntentInput{
		Intent: entity.IntentCreateOrder,
		Items:  []entity.OrderItem{{ProductID: 10, Quantity: 9}},
	})

	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	expectTransaction(fx.txManager, factory)
	factory.EXPECT().ProductRepo().Return(productRepo)
	productRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Product{ID: 10, Price: 1, Stock: 2}, nil)

	_, err := fx.service.CreateOrder(ctx, principal, token)

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestShopperService_CancelOrder(t *testing.T) {
	ctx := context.Background()
	principal := &entity.Principal{UserID: 3}

	setup := func(t *testing.T, order *entity.Order, findErr error) (shopperServiceFixtures, *mockRepo.MockOrderRepository, string) {
		fx := createTestShopperService(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		expectTransaction(fx.txManager, factory)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, int64(40)).Return(order, findErr)

		token := fx.intent(t, principal, &usecase.IssueIntentInput{Intent: entity.IntentCancelOrder, OrderID: 40})

		return fx, orderRepo, token
	}

	t.Run("own order", func(t *testing.T) {
		fx, orderRepo, token := setup(t, &entity.Order{ID: 40, UserID: 3}, nil)
		orderRepo.EXPECT().Delete(ctx, int64(40)).Return(nil)

		assert.NoError(t, fx.service.CancelOrder(ctx, principal, token))
	})

	t.Run("someone else's order", func(t *testing.T) {
		fx, _, token := setup(t, &entity.Order{ID: 40, UserID: 4}, nil)

		err := fx.service.CancelOrder(ctx, principal, token)
		assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
	})

	t.Run("orphaned order", func(t *testing.T) {
		fx, _, token := setup(t, &entity.Order{ID: 40, UserID: entity.DeletedUserID}, nil)

		err := fx.service.CancelOrder(ctx, principal, token)
		assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
	})

	t.Run("missing order", func(t *testing.T) {
		fx, _, token := setup(t, nil, repository.ErrOrderNotFound)

		err := fx.service.CancelOrder(ctx, principal, token)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestShopperService_Queries(t *testing.T) {
	ctx := context.Background()
	fx := createTestShopperService(t)

	fx.userRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrUserNotFound)
	_, err := fx.service.CurrentUser(ctx, &entity.Principal{UserID: 8})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	products := []*entity.Product{{ID: 1, Stock: 3}}
	fx.productRepo.EXPECT().ListAvailable(ctx).Return(products, nil)
	got, err := fx.service.AvailableProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}
