package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service     *adminService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	tagRepo     *mockRepo.MockTagRepository
	orderRepo   *mockRepo.MockOrderRepository
	catalog     *mockService.MockCatalogSource
	core        realCore
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	core := newRealCore(t)
	fx := adminServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		tagRepo:     mockRepo.NewMockTagRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		catalog:     mockService.NewMockCatalogSource(t),
		core:        core,
	}

	fx.service = NewAdminService(AdminServiceParams{
		TxManager:   fx.txManager,
		UserRepo:    fx.userRepo,
		ProductRepo: fx.productRepo,
		TagRepo:     fx.tagRepo,
		OrderRepo:   fx.orderRepo,
		Hasher:      core.hasher,
		Policy:      core.policy,
		Catalog:     fx.catalog,
		Logger:      newDiscardLogger(),
	}).(*adminService)

	return fx
}

// inTransaction routes every factory getter to the fixture repositories.
func (fx adminServiceFixtures) inTransaction() {
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo).Maybe()
	fx.factory.EXPECT().TagRepo().Return(fx.tagRepo).Maybe()
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo).Maybe()
}

func TestAdminService_RemoveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("orders move to the deleted-user sentinel", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.inTransaction()
		fx.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(&entity.User{ID: 9}, nil)
		fx.orderRepo.EXPECT().ReassignUser(ctx, int64(9), entity.DeletedUserID).Return(3, nil)
		fx.userRepo.EXPECT().Delete(ctx, int64(9)).Return(nil)

		moved, err := fx.service.RemoveUser(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, int64(3), moved)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.inTransaction()
		fx.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RemoveUser(ctx, 9)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAdminService_ImportProducts(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdminService(t)

	fx.catalog.EXPECT().Load(ctx, "spring.xml").Return([]service.CatalogProduct{
		{Name: "Kettle", Price: 30, Stock: 4, TagName: "kitchen"},
		{Name: "Pan", Price: 20, Stock: 2, TagName: "kitchen"},
		{Name: "Lamp", Price: 15, Stock: 1, TagName: "living"},
		{Name: "Gift card", Price: 10},
	}, nil)
	fx.inTransaction()

	fx.tagRepo.EXPECT().FindByName(ctx, "kitchen").Return(nil, repository.ErrTagNotFound).Once()
	fx.tagRepo.EXPECT().FindByName(ctx, "living").Return(&entity.Tag{ID: 2, Name: "living"}, nil).Once()
	fx.tagRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Tag")).
		Run(func(_ context.Context, tag *entity.Tag) { tag.ID = 1 }).
		Return(nil).Once()
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil).Times(4)

	out, err := fx.service.ImportProducts(ctx, "spring.xml")

	require.NoError(t, err)
	assert.Equal(t, []string{"kitchen"}, out.CreatedTags)
	require.Len(t, out.Products, 4)
	assert.Equal(t, int64(1), out.Products[0].Tags[0].ID)
	assert.Same(t, out.Products[0].Tags[0], out.Products[1].Tags[0])
	assert.Equal(t, int64(2), out.Products[2].Tags[0].ID)
	assert.Empty(t, out.Products[3].Tags)
}

func TestAdminService_ImportProducts_LoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		loadErr error
		want    error
	}{
		{name: "missing document", loadErr: service.ErrCatalogDocumentNotFound, want: domainerrors.ErrCatalogDocumentNotFound},
		{name: "invalid document", loadErr: service.ErrCatalogDocumentInvalid, want: domainerrors.ErrCatalogDocumentInvalid},
		{name: "no storage", loadErr: service.ErrCatalogUnavailable, want: domainerrors.ErrCatalogUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)
			fx.catalog.EXPECT().Load(mock.Anything, "k").Return(nil, tt.loadErr)

			_, err := fx.service.ImportProducts(context.Background(), "k")

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdminService_ImportProducts_InvalidDocumentDetails(t *testing.T) {
	tests := []struct {
		name        string
		loadErr     error
		wantDetails string
	}{
		{
			name:        "decoder failure",
			loadErr:     service.InvalidCatalogDocument("document is not a well-formed Products XML document", errors.New("XML syntax error on line 1: unexpected EOF")),
			wantDetails: "document is not a well-formed Products XML document",
		},
		{
			name:        "invalid entry",
			loadErr:     service.InvalidCatalogDocument(`product "Mug" has a negative price`, nil),
			wantDetails: `product "Mug" has a negative price`,
		},
		{
			name:    "bare sentinel",
			loadErr: service.ErrCatalogDocumentInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)
			fx.catalog.EXPECT().Load(mock.Anything, "k").Return(nil, tt.loadErr)

			_, err := fx.service.ImportProducts(context.Background(), "k")
			require.ErrorIs(t, err, domainerrors.ErrCatalogDocumentInvalid)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantDetails, appErr.Details())
			assert.NotContains(t, appErr.Details(), "syntax error")
		})
	}
}

func TestAdminService_AddProduct_UnknownTag(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdminService(t)
	fx.inTransaction()
	fx.tagRepo.EXPECT().FindByName(ctx, "ghost").Return(nil, repository.ErrTagNotFound)

	_, err := fx.service.AddProduct(ctx, &usecase.AddProductInput{Name: "Mug", Price: 5, TagNames: []string{"ghost"}})

	assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)
}

func TestAdminService_AddOrder(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdminService(t)
	fx.inTransaction()
	fx.service.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	fx.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(&entity.User{ID: 4}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(&entity.Product{ID: 10, Price: 3, Stock: 10}, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, int64(10), 3).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.AddOrder(ctx, &usecase.AddOrderInput{
		UserID: 4,
		Status: entity.OrderStatusPaid,
		Items:  []entity.OrderItem{{ProductID: 10, Quantity: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, fx.service.now(), order.OrderDate)
	assert.InDelta(t, 9.0, order.TotalPrice, 0.0001)
}

func TestAdminService_AddOrder_Validation(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.AddOrder(context.Background(), &usecase.AddOrderInput{UserID: 4, Status: "Lost"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.AddOrder(context.Background(), &usecase.AddOrderInput{UserID: 4})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdateOrder(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.orderRepo.EXPECT().UpdateStatus(ctx, int64(5), entity.OrderStatusShipped, date).Return(nil)

		err := fx.service.UpdateOrder(ctx, 5, &usecase.UpdateOrderInput{Status: entity.OrderStatusShipped, OrderDate: date})
		assert.NoError(t, err)
	})

	t.Run("missing order", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.orderRepo.EXPECT().UpdateStatus(ctx, int64(5), entity.OrderStatusShipped, date).Return(repository.ErrOrderNotFound)

		err := fx.service.UpdateOrder(ctx, 5, &usecase.UpdateOrderInput{Status: entity.OrderStatusShipped, OrderDate: date})
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestAdminService(t)

		err := fx.service.UpdateOrder(ctx, 5, &usecase.UpdateOrderInput{Status: "Lost", OrderDate: date})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing date", func(t *testing.T) {
		fx := createTestAdminService(t)

		err := fx.service.UpdateOrder(ctx, 5, &usecase.UpdateOrderInput{Status: entity.OrderStatusPaid})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAdminService_AddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "ops@example.com", "ops").Return(false, nil)

		var stored *entity.User
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { stored = user }).
			Return(nil)

		user, err := fx.service.AddUser(ctx, &usecase.AddUserInput{
			Username: "ops", Email: "ops@example.com", Password: "Str0ngPassw0rd", IsAdmin: true,
		})

		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
		assert.NotEqual(t, "Str0ngPassw0rd", stored.PasswordHash)
		assert.True(t, fx.core.hasher.Verify(stored.PasswordHash, "Str0ngPassw0rd"))
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "ops@example.com", "ops").Return(true, nil)

		_, err := fx.service.AddUser(ctx, &usecase.AddUserInput{
			Username: "ops", Email: "ops@example.com", Password: "Str0ngPassw0rd",
		})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestAdminService_RemoveProduct_InUse(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdminService(t)
	fx.productRepo.EXPECT().Delete(ctx, int64(6)).Return(repository.ErrProductInUse)

	err := fx.service.RemoveProduct(ctx, 6)

	assert.ErrorIs(t, err, domainerrors.ErrProductInUse)
}
