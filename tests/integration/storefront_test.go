// tests/integration/storefront_test.go
package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livprint/internal/cart"
	"livprint/internal/catalog"
	"livprint/internal/orders"
)

// TestShoppingFlow walks one full session over the shipped catalogue:
// browse a family, search, configure a product, fill the cart, check out,
// and cancel the order.
func TestShoppingFlow(t *testing.T) {
	ctx := context.Background()

	repo, err := catalog.LoadRepository("../../data/catalogue.json")
	require.NoError(t, err)

	catalogSvc := catalog.NewService(repo)
	cartSvc := cart.NewLedger()
	orderSvc := orders.NewLedger(cartSvc, "user-1")

	// Browse.
	families := catalogSvc.Families(ctx)
	require.Contains(t, families, catalog.FamilyExoRange)
	require.Contains(t, families, catalog.FamilyTurtleOrtho)

	categories := catalogSvc.CategoriesForFamily(ctx, catalog.FamilyExoRange)
	assert.Equal(t, "All", categories[0])
	assert.Contains(t, categories, "Forearm")
	assert.NotContains(t, categories, "Metacarpals")

	turtle := catalogSvc.CategoriesForFamily(ctx, catalog.FamilyTurtleOrtho)
	assert.NotContains(t, turtle, "Ankle")

	page, err := catalogSvc.Products(ctx, 1, 10, "Wrist", catalog.FamilyExoRange)
	require.NoError(t, err)
	require.NotEmpty(t, page.Docs)
	for _, doc := range page.Docs {
		assert.Equal(t, "Wrist", doc.Category)
		assert.Equal(t, catalog.FamilyExoRange, doc.ProductFamily)
	}

	// "All" pages over the entire catalogue regardless of family.
	all, err := catalogSvc.Products(ctx, 1, 50, catalog.CategoryAll, catalog.FamilyTurtleOrtho)
	require.NoError(t, err)
	assert.Equal(t, len(repo.AllRecords()), all.TotalDocs)

	// Search by partial category title.
	hits := catalogSvc.Search(ctx, "wri")
	require.NotEmpty(t, hits)

	// Configure and add to cart twice; the lines merge.
	product := page.Docs[0]
	require.NotEmpty(t, product.Customization.Sizes)
	require.Equal(t, []string{"White", "Black"}, product.Customization.Colors)

	input := cart.NewItem{
		UserID:        "user-1",
		ProductID:     101,
		ProductName:   product.Name,
		Quantity:      1,
		SelectedSize:  product.Customization.Sizes[0],
		SelectedColor: product.Customization.Colors[0],
		BodySide:      "Left",
		ItemCode:      product.ItemCode,
		ImageURL:      product.ImageURL,
		Features:      product.Features,
		SizingNotes:   product.Notes,
	}
	_, err = cartSvc.Add(ctx, input)
	require.NoError(t, err)

	input.Quantity = 2
	merged, err := cartSvc.Add(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Quantity)
	require.Len(t, cartSvc.Items(ctx), 1)

	// A different side is its own line.
	input.BodySide = "Right"
	input.Quantity = 1
	_, err = cartSvc.Add(ctx, input)
	require.NoError(t, err)
	require.Len(t, cartSvc.Items(ctx), 2)

	// Check out.
	orderID, err := orderSvc.Checkout(ctx)
	require.NoError(t, err)
	assert.Empty(t, cartSvc.Items(ctx))

	order, ok := orderSvc.Get(ctx, orderID)
	require.True(t, ok)
	assert.Equal(t, orders.StatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 3, order.Items[0].Quantity)

	// Cancel and verify the terminal state holds.
	require.NoError(t, orderSvc.Cancel(ctx, orderID))
	assert.ErrorIs(t, orderSvc.Cancel(ctx, orderID), orders.ErrOrderTerminal)

	list := orderSvc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, orders.StatusCancelled, list[0].Status)
}
