package postgres

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/migrations"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		// Orders must be able to point at the deleted-user sentinel.
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection to ":memory:" would otherwise see its own empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.TagModel{},
		&model.ProductModel{},
		&model.ProductTagModel{},
		&model.OrderModel{},
		&model.OrderDetailModel{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "salt:key",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, stock int, tags ...*entity.Tag) *entity.Product {
	t.Helper()

	product := &entity.Product{Name: name, Price: 9.5, Stock: stock, Tags: tags}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db, "alice")
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	exists, err := repo.ExistsByEmailOrUsername(ctx, "other@example.com", "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmailOrUsername(ctx, "other@example.com", "other")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice")

	err := NewUserRepository(db).Create(context.Background(), &entity.User{
		Username:     "alice",
		Email:        "second@example.com",
		PasswordHash: "salt:key",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_UpdatePasswordHashAndDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, "alice")

	require.NoError(t, repo.UpdatePasswordHash(ctx, user.ID, "new:hash"))
	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new:hash", found.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, 999, "x:y"), repository.ErrUserNotFound)

	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), repository.ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestProductRepository_CreateWithTagsAndListAvailable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tags := NewTagRepository(db)

	tag := &entity.Tag{Name: "garden"}
	require.NoError(t, tags.Create(ctx, tag))

	inStock := seedProduct(t, db, "Rake", 3, tag)
	seedProduct(t, db, "Shovel", 0)

	products, err := NewProductRepository(db).ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, inStock.ID, products[0].ID)
	require.Len(t, products[0].Tags, 1)
	assert.Equal(t, "garden", products[0].Tags[0].Name)

	var tagCount int64
	require.NoError(t, db.Model(&model.TagModel{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)
}

func TestProductRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProductRepository(db)
	product := seedProduct(t, db, "Rake", 2)

	require.NoError(t, repo.DecrementStock(ctx, product.ID, 2))
	assert.ErrorIs(t, repo.DecrementStock(ctx, product.ID, 1), repository.ErrInsufficientStock)
	assert.ErrorIs(t, repo.DecrementStock(ctx, 999, 1), repository.ErrProductNotFound)

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Stock)
}

func TestProductRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProductRepository(db)
	user := seedUser(t, db, "alice")
	tag := &entity.Tag{Name: "garden"}
	require.NoError(t, NewTagRepository(db).Create(ctx, tag))

	ordered := seedProduct(t, db, "Rake", 5)
	free := seedProduct(t, db, "Hoe", 5, tag)

	require.NoError(t, NewOrderRepository(db).Create(ctx, &entity.Order{
		UserID:    user.ID,
		OrderDate: time.Now(),
		Status:    entity.OrderStatusPending,
		Details:   []*entity.OrderDetail{{ProductID: ordered.ID, Price: 9.5}},
	}))

	assert.ErrorIs(t, repo.Delete(ctx, ordered.ID), repository.ErrProductInUse)
	require.NoError(t, repo.Delete(ctx, free.ID))
	assert.ErrorIs(t, repo.Delete(ctx, free.ID), repository.ErrProductNotFound)

	var links int64
	require.NoError(t, db.Model(&model.ProductTagModel{}).Count(&links).Error)
	assert.Zero(t, links)
}

func TestTagRepository_CreateDuplicateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTagRepository(db)

	tag := &entity.Tag{Name: "garden"}
	require.NoError(t, repo.Create(ctx, tag))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Tag{Name: "garden"}), repository.ErrTagAlreadyExists)

	seedProduct(t, db, "Rake", 1, tag)

	require.NoError(t, repo.Delete(ctx, tag.ID))
	_, err := repo.FindByName(ctx, "garden")
	assert.ErrorIs(t, err, repository.ErrTagNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, tag.ID), repository.ErrTagNotFound)

	var links int64
	require.NoError(t, db.Model(&model.ProductTagModel{}).Count(&links).Error)
	assert.Zero(t, links)
}

func TestOrderRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	user := seedUser(t, db, "alice")
	product := seedProduct(t, db, "Rake", 5)

	order := &entity.Order{
		UserID:     user.ID,
		OrderDate:  time.Now().UTC(),
		Status:     entity.OrderStatusPending,
		TotalPrice: 19,
		Details: []*entity.OrderDetail{
			{ProductID: product.ID, Price: 9.5},
			{ProductID: product.ID, Price: 9.5},
		},
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.NotZero(t, order.ID)
	for _, detail := range order.Details {
		assert.NotZero(t, detail.ID)
		assert.Equal(t, order.ID, detail.OrderID)
	}

	shippedAt := time.Now().UTC().Add(time.Hour)
	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderStatusShipped, shippedAt))
	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, found.Status)
	assert.Len(t, found.Details, 2)
	assert.InDelta(t, 19.0, found.TotalPrice, 0.001)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 999, entity.OrderStatusPaid, shippedAt), repository.ErrOrderNotFound)

	details, err := repo.ListDetails(ctx)
	require.NoError(t, err)
	require.Len(t, details, 2)
	require.NotNil(t, details[0].Product)
	assert.Equal(t, "Rake", details[0].Product.Name)

	require.NoError(t, repo.DeleteDetail(ctx, details[0].ID))
	assert.ErrorIs(t, repo.DeleteDetail(ctx, details[0].ID), repository.ErrOrderDetailNotFound)

	require.NoError(t, repo.Delete(ctx, order.ID))
	_, err = repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	var remaining int64
	require.NoError(t, db.Model(&model.OrderDetailModel{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestOrderRepository_ReassignUserToSentinel(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	for _, owner := range []int64{alice.ID, alice.ID, bob.ID} {
		require.NoError(t, repo.Create(ctx, &entity.Order{
			UserID:    owner,
			OrderDate: time.Now(),
			Status:    entity.OrderStatusPending,
		}))
	}

	moved, err := repo.ReassignUser(ctx, alice.ID, entity.DeletedUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)
	require.NoError(t, NewUserRepository(db).Delete(ctx, alice.ID))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for _, order := range orders[:2] {
		assert.Equal(t, entity.DeletedUserID, order.UserID)
		assert.Nil(t, order.User)
	}
	require.NotNil(t, orders[2].User)
	assert.Equal(t, "bob", orders[2].User.Username)

	bobs, err := repo.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobs, 1)
}

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	errAbort := errors.New("abort")
	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.TagRepo().Create(ctx, &entity.Tag{Name: "rolled-back"}); err != nil {
			return err
		}

		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	_, err = NewTagRepository(db).FindByName(ctx, "rolled-back")
	assert.ErrorIs(t, err, repository.ErrTagNotFound)

	err = tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.TagRepo().Create(ctx, &entity.Tag{Name: "committed"})
	})
	require.NoError(t, err)

	_, err = NewTagRepository(db).FindByName(ctx, "committed")
	assert.NoError(t, err)
}

func TestRunMigrations_UsesEmbeddedScripts(t *testing.T) {
	original := gooseUpContext
	t.Cleanup(func() { gooseUpContext = original })

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, runMigrations(context.Background(), sqlDB))
	assert.Equal(t, ".", gotDir)

	entries, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
