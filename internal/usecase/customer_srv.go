package usecase

import (
	"context"
	"fmt"
	"time"

	"artisanverse/internal/data/entity"
	"artisanverse/internal/data/store"
	"artisanverse/internal/dto/response"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	Purchases(ctx context.Context, customerID string) ([]response.PurchaseView, error)
	Checkout(ctx context.Context, customerID, productID string) (*response.PurchaseView, error)
}

type customerService struct {
	store *store.Store
	log   *zap.Logger
}

func NewCustomerService(st *store.Store, log *zap.Logger) CustomerService {
	return &customerService{
		store: st,
		log:   log,
	}
}

// Purchases returns the customer's order history joined with product data.
// Purchases referencing a missing product are kept without the join rather
// than dropped; the foreign key is unenforced at write time.
func (s *customerService) Purchases(ctx context.Context, customerID string) ([]response.PurchaseView, error) {
	if customerID == "" {
		return nil, ErrUnauthorized
	}

	purchases, err := s.store.Purchase.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	views := make([]response.PurchaseView, 0, len(purchases))
	for _, p := range purchases {
		view := response.PurchaseView{
			OrderID:      p.OrderID,
			PurchaseDate: p.PurchaseDate,
		}

		product, err := s.store.Product.FindByID(ctx, p.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			resp := response.ProductToResponse(product)
			view.Product = &resp
		}

		views = append(views, view)
	}

	return views, nil
}

// Checkout records one purchase for an authenticated customer. The product
// must exist at purchase time; the stored reference is not enforced after
// that.
func (s *customerService) Checkout(ctx context.Context, customerID, productID string) (*response.PurchaseView, error) {
	if customerID == "" {
		return nil, ErrUnauthorized
	}
	if productID == "" {
		return nil, &ValidationError{Fields: map[string]string{"productId": "This field is required"}}
	}

	product, err := s.store.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, store.ErrNotFound)
	}

	purchase := &entity.Purchase{
		OrderID:      utils.GenerateOrderID(),
		CustomerID:   customerID,
		ProductID:    productID,
		PurchaseDate: time.Now().Format("2006-01-02"),
	}
	if err := s.store.Purchase.Append(ctx, purchase); err != nil {
		return nil, err
	}

	s.log.Info("Purchase completed",
		zap.String("order_id", purchase.OrderID),
		zap.String("customer_id", customerID),
		zap.String("product_id", productID))

	resp := response.ProductToResponse(product)
	return &response.PurchaseView{
		OrderID:      purchase.OrderID,
		PurchaseDate: purchase.PurchaseDate,
		Product:      &resp,
	}, nil
}
