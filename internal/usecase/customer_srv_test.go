package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"artisanverse/internal/data/entity"
	"artisanverse/internal/data/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedPurchases(t *testing.T, dir string, purchases []*entity.Purchase) {
	t.Helper()
	data, err := json.MarshalIndent(purchases, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "purchases.json"), data, 0644))
}

func TestCustomerService_PurchasesJoinProducts(t *testing.T) {
	dir := t.TempDir()
	seedPurchases(t, dir, []*entity.Purchase{
		{OrderID: "AV1A2B3C", CustomerID: "user-1", ProductID: "prod-1", PurchaseDate: "2026-08-01"},
		{OrderID: "AV4D5E6F", CustomerID: "user-1", ProductID: "prod-gone", PurchaseDate: "2026-08-02"},
		{OrderID: "AV7G8H9I", CustomerID: "user-2", ProductID: "prod-1", PurchaseDate: "2026-08-03"},
	})

	st := store.NewStore(dir, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, st.Product.Append(ctx, &entity.Product{ID: "prod-1", Name: "Tuscan Vase", ArtisanID: "art-1"}))

	s := NewCustomerService(st, zap.NewNop())

	views, err := s.Purchases(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "AV1A2B3C", views[0].OrderID)
	require.NotNil(t, views[0].Product)
	assert.Equal(t, "Tuscan Vase", views[0].Product.Name)

	// A dangling product reference keeps the purchase, without the join
	assert.Equal(t, "AV4D5E6F", views[1].OrderID)
	assert.Nil(t, views[1].Product)
}

func TestCustomerService_PurchasesWithoutSession(t *testing.T) {
	s := NewCustomerService(newTestStore(t), zap.NewNop())

	_, err := s.Purchases(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCustomerService_PurchasesEmptyHistory(t *testing.T) {
	s := NewCustomerService(newTestStore(t), zap.NewNop())

	views, err := s.Purchases(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCustomerService_Checkout(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.Product.Append(ctx, &entity.Product{ID: "prod-1", Name: "Tuscan Vase", ArtisanID: "art-1"}))

	s := NewCustomerService(st, zap.NewNop())

	view, err := s.Checkout(ctx, "user-1", "prod-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(view.OrderID, "AV"), "order id %q", view.OrderID)
	assert.Len(t, view.OrderID, 8)
	assert.NotEmpty(t, view.PurchaseDate)
	require.NotNil(t, view.Product)
	assert.Equal(t, "Tuscan Vase", view.Product.Name)

	// The purchase is persisted and shows up in the history
	views, err := s.Purchases(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, view.OrderID, views[0].OrderID)

	// A second checkout gets its own order id
	again, err := s.Checkout(ctx, "user-1", "prod-1")
	require.NoError(t, err)
	assert.NotEqual(t, view.OrderID, again.OrderID)
}

func TestCustomerService_CheckoutUnknownProduct(t *testing.T) {
	st := newTestStore(t)
	s := NewCustomerService(st, zap.NewNop())
	ctx := context.Background()

	_, err := s.Checkout(ctx, "user-1", "prod-404")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Nothing was written
	purchases, err := st.Purchase.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, purchases)
}

func TestCustomerService_CheckoutWithoutSession(t *testing.T) {
	s := NewCustomerService(newTestStore(t), zap.NewNop())

	_, err := s.Checkout(context.Background(), "", "prod-1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
