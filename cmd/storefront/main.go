// cmd/storefront/main.go
package main

import (
	"context"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"livprint/internal/cart"
	"livprint/internal/catalog"
	"livprint/internal/orders"
)

// The storefront demo wires the full engine together and walks one shopping
// session: browse a family, search, configure a product, fill the cart,
// check out, and cancel the order. All presentation (screens, navigation)
// lives outside this repository; this binary stands in for it.
func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	ctx := context.Background()

	shutdown, err := setupTracing(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up tracing")
	}
	defer shutdown(ctx)

	repo, err := catalog.LoadRepository(getEnv("CATALOGUE_PATH", "data/catalogue.json"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalogue")
	}

	userID := getEnv("USER_ID", "user-1")
	catalogSvc := catalog.NewService(repo)
	cartSvc := cart.NewLedger()
	orderSvc := orders.NewLedger(cartSvc, userID)

	log.Info().Strs("families", catalogSvc.Families(ctx)).Msg("catalogue loaded")
	log.Info().
		Strs("categories", catalogSvc.CategoriesForFamily(ctx, catalog.FamilyExoRange)).
		Msg("browsing Exo Range")

	page, err := catalogSvc.Products(ctx, 1, 10, "Wrist", catalog.FamilyExoRange)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to page products")
	}
	log.Info().
		Int("totalDocs", page.TotalDocs).
		Int("totalPages", page.TotalPages).
		Msg("first page of Wrist products")

	for _, hit := range catalogSvc.Search(ctx, "wri") {
		log.Info().Str("name", hit.Name).Str("itemCode", hit.ItemCode).Msg("search hit")
	}

	if len(page.Docs) == 0 {
		log.Info().Msg("no products to order, done")
		return
	}

	// Configure the first product twice with the same options; the cart
	// merges the lines.
	product := page.Docs[0]
	size := ""
	if len(product.Customization.Sizes) > 0 {
		size = product.Customization.Sizes[0]
	}
	input := cart.NewItem{
		UserID:        userID,
		ProductID:     atoi(product.ID),
		ProductName:   product.Name,
		Quantity:      1,
		SelectedSize:  size,
		SelectedColor: product.Customization.Colors[0],
		BodySide:      "Left",
		ItemCode:      product.ItemCode,
		ImageURL:      product.ImageURL,
		Features:      product.Features,
	}
	if _, err := cartSvc.Add(ctx, input); err != nil {
		log.Fatal().Err(err).Msg("failed to add to cart")
	}
	input.Quantity = 2
	line, err := cartSvc.Add(ctx, input)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to add to cart")
	}
	log.Info().Int64("cart_item_id", line.ID).Int("quantity", line.Quantity).Msg("cart line after merge")

	orderID, err := orderSvc.Checkout(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("checkout failed")
	}
	log.Info().
		Str("order_id", orderID).
		Int("cart_size_after", len(cartSvc.Items(ctx))).
		Msg("checked out")

	if err := orderSvc.Cancel(ctx, orderID); err != nil {
		log.Fatal().Err(err).Msg("cancel failed")
	}
	for _, o := range orderSvc.List(ctx) {
		log.Info().
			Str("order_id", o.ID).
			Str("status", string(o.Status)).
			Int("items", len(o.Items)).
			Msg("order on file")
	}
}

// setupTracing installs a tracer provider that prints spans to stderr. The
// engine only uses the otel API; nothing leaves the process.
func setupTracing(ctx context.Context) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
