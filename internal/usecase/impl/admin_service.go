package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	tagRepo     repository.TagRepository
	orderRepo   repository.OrderRepository
	hasher      service.CredentialHasher
	policy      service.PasswordPolicy
	catalog     service.CatalogSource
	now         func() time.Time
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	TagRepo     repository.TagRepository
	OrderRepo   repository.OrderRepository
	Hasher      service.CredentialHasher
	Policy      service.PasswordPolicy
	Catalog     service.CatalogSource
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		tagRepo:     params.TagRepo,
		orderRepo:   params.OrderRepo,
		hasher:      params.Hasher,
		policy:      params.Policy,
		catalog:     params.Catalog,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Products ---

func (srv *adminService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
	}
	if product.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		tagRepo := repos.TagRepo()
		for _, name := range input.TagNames {
			tag, err := tagRepo.FindByName(ctx, name)
			if err != nil {
				return translateError(err)
			}
			product.Tags = append(product.Tags, tag)
		}

		return translateError(repos.ProductRepo().Create(ctx, product))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add product")
	}

	srv.log(ctx).Info("Product added", slog.Int64("productID", product.ID))

	return product, nil
}

// RemoveProduct unlinks the product's tags and deletes it. Products referenced by order details stay.
func (srv *adminService) RemoveProduct(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return translateError(err)
	}

	srv.log(ctx).Info("Product removed", slog.Int64("productID", id))

	return nil
}

// ImportProducts creates every product of a catalog document in one transaction.
// Tags referenced by name are created when missing.
func (srv *adminService) ImportProducts(ctx context.Context, key string) (*usecase.ImportProductsOutput, error) {
	entries, err := srv.catalog.Load(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Catalog load failed", slog.String("key", key), slog.Any("error", err))

		return nil, translateError(err)
	}

	output := &usecase.ImportProductsOutput{}
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		tags := make(map[string]*entity.Tag)
		output.Products = output.Products[:0]
		output.CreatedTags = output.CreatedTags[:0]

		for _, entry := range entries {
			product := &entity.Product{
				Name:        entry.Name,
				Description: entry.Description,
				Price:       entry.Price,
				Stock:       entry.Stock,
			}
			if entry.TagName != "" {
				tag, created, err := srv.resolveTag(ctx, repos.TagRepo(), tags, entry.TagName)
				if err != nil {
					return err
				}
				if created {
					output.CreatedTags = append(output.CreatedTags, tag.Name)
				}
				product.Tags = []*entity.Tag{tag}
			}

			if err := repos.ProductRepo().Create(ctx, product); err != nil {
				return translateError(err)
			}
			output.Products = append(output.Products, product)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to import products")
	}

	srv.log(ctx).Info("Catalog imported",
		slog.String("key", key),
		slog.Int("productCount", len(output.Products)),
		slog.Int("createdTagCount", len(output.CreatedTags)),
	)

	return output, nil
}

func (srv *adminService) resolveTag(
	ctx context.Context,
	tagRepo repository.TagRepository,
	cache map[string]*entity.Tag,
	name string,
) (*entity.Tag, bool, error) {
	if tag, ok := cache[name]; ok {
		return tag, false, nil
	}

	tag, err := tagRepo.FindByName(ctx, name)
	if err == nil {
		cache[name] = tag

		return tag, false, nil
	}
	if !errors.Is(err, repository.ErrTagNotFound) {
		return nil, false, errors.Wrap(err, "failed to find tag")
	}

	tag = &entity.Tag{Name: name}
	if err := tagRepo.Create(ctx, tag); err != nil {
		return nil, false, translateError(err)
	}
	cache[name] = tag

	return tag, true, nil
}

// --- Orders ---

func (srv *adminService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *adminService) CancelOrder(ctx context.Context, id int64) error {
	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		return translateError(err)
	}

	srv.log(ctx).Info("Order cancelled by admin", slog.Int64("orderID", id))

	return nil
}

// AddOrder places an order for an existing user. Status defaults to Pending and the date to now.
func (srv *adminService) AddOrder(ctx context.Context, input *usecase.AddOrderInput) (*entity.Order, error) {
	status := input.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(status))
	}
	if !validItems(input.Items) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("items need a productId and a positive quantity")
	}
	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = srv.now().UTC()
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().FindByID(ctx, input.UserID); err != nil {
			return translateError(err)
		}

		var txErr error
		order, txErr = placeOrder(ctx, repos, input.UserID, input.Items, status, orderDate)

		return txErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add order")
	}

	return order, nil
}

func (srv *adminService) UpdateOrder(ctx context.Context, id int64, input *usecase.UpdateOrderInput) error {
	if !input.Status.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(input.Status))
	}
	if input.OrderDate.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("orderDate is required")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, input.Status, input.OrderDate); err != nil {
		return translateError(err)
	}

	return nil
}

func (srv *adminService) ListOrderDetails(ctx context.Context) ([]*entity.OrderDetail, error) {
	details, err := srv.orderRepo.ListDetails(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order details")
	}

	return details, nil
}

func (srv *adminService) RemoveOrderDetail(ctx context.Context, id int64) error {
	return translateError(srv.orderRepo.DeleteDetail(ctx, id))
}

// --- Tags ---

func (srv *adminService) AddTag(ctx context.Context, name string) (*entity.Tag, error) {
	tag := &entity.Tag{Name: strings.TrimSpace(name)}
	if tag.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("tag name is required")
	}

	if err := srv.tagRepo.Create(ctx, tag); err != nil {
		return nil, translateError(err)
	}

	return tag, nil
}

// RemoveTag unlinks the tag from every product before deleting it.
func (srv *adminService) RemoveTag(ctx context.Context, id int64) error {
	return translateError(srv.tagRepo.Delete(ctx, id))
}

// --- Users ---

func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *adminService) UserOrders(ctx context.Context, userID int64) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// AddUser stores the plaintext password as a StoredCredential. Admins may create other admins.
func (srv *adminService) AddUser(ctx context.Context, input *usecase.AddUserInput) (*entity.User, error) {
	if err := srv.policy.Validate(input.Password); err != nil {
		return nil, err
	}

	exists, err := srv.userRepo.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	stored, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: stored,
		IsAdmin:      input.IsAdmin,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User added by admin", slog.Int64("userID", user.ID), slog.Bool("isAdmin", user.IsAdmin))

	return user, nil
}

// RemoveUser reassigns the user's orders to entity.DeletedUserID and deletes the user atomically.
// Identity and reset tokens already issued for the user are not revoked.
func (srv *adminService) RemoveUser(ctx context.Context, id int64) (int64, error) {
	var reassigned int64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()
		if _, err := userRepo.FindByID(ctx, id); err != nil {
			return translateError(err)
		}

		moved, err := repos.OrderRepo().ReassignUser(ctx, id, entity.DeletedUserID)
		if err != nil {
			return err
		}
		reassigned = moved

		return translateError(userRepo.Delete(ctx, id))
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to remove user")
	}

	srv.log(ctx).Info("User removed",
		slog.Int64("userID", id),
		slog.Int64("reassignedOrders", reassigned),
	)

	return reassigned, nil
}
