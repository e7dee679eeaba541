package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/solemarket/storefront/config"
	"github.com/solemarket/storefront/internal/adapter/catalog"
	"github.com/solemarket/storefront/internal/adapter/cli"
	"github.com/solemarket/storefront/internal/adapter/display"
	"github.com/solemarket/storefront/internal/adapter/payment"
	"github.com/solemarket/storefront/internal/adapter/storage"
	"github.com/solemarket/storefront/internal/core/service"
	"github.com/solemarket/storefront/pkg/schema"
)

type serdes struct {
	cart       schema.Serde
	categories schema.Serde
}

type services struct {
	catalog    *service.CatalogService
	cart       *service.CartService
	categories *service.CategoryService
	checkout   *service.CheckoutService
}

type App struct {
	ctx      context.Context
	cfg      config.Config
	locale   language.Tag
	serdes   serdes
	store    *storage.SnapshotStore
	services services
	watcher  *catalog.Watcher
	console  *cli.Console
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initLocale()
	app.initSerdes()
	app.initStorage()
	app.initServices()
	app.initFrontend()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initLocale() {
	const op = "App.initLocale"

	tag, err := language.Parse(app.cfg.Display.Locale)
	if err != nil {
		app.fallDown(op, err)
	}
	app.locale = tag
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"

	cartSerde, err := schema.NewSerdeCartSnapshotV1()
	if err != nil {
		app.fallDown(op, err)
	}

	categoriesSerde, err := schema.NewSerdeCategoryListV1()
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.cart = cartSerde
	app.serdes.categories = categoriesSerde
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	store, err := storage.NewSnapshotStore(app.cfg.Storage.Path)
	if err != nil {
		app.fallDown(op, err)
	}
	app.store = store
}

func (app *App) initServices() {
	const op = "App.initServices"

	products := catalog.Seed()
	if app.cfg.Catalog.File != "" {
		loaded, err := catalog.Load(app.cfg.Catalog.File)
		if err != nil {
			app.fallDown(op, err)
		}
		products = loaded
	}

	app.services.catalog = service.NewCatalogService(app.locale, products)
	app.services.cart = service.NewCartService(
		app.ctx, app.store, app.serdes.cart, app.cfg.Storage.CartKey,
	)
	app.services.categories = service.NewCategoryService(
		app.ctx, app.store, app.serdes.categories, app.cfg.Storage.CategoriesKey,
	)
	app.services.checkout = service.NewCheckoutService(
		app.services.cart, payment.NewStubGateway(),
	)

	if app.cfg.Catalog.Watch && app.cfg.Catalog.File != "" {
		w, err := catalog.NewWatcher(app.cfg.Catalog.File, app.services.catalog)
		if err != nil {
			app.fallDown(op, err)
		}
		app.watcher = w
	}
}

func (app *App) initFrontend() {
	const op = "App.initFrontend"

	prices, err := display.NewCurrencyFormatter(
		app.cfg.Display.Locale, app.cfg.Display.Currency,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.console = cli.NewConsole(
		app.services.catalog,
		app.services.cart,
		app.services.categories,
		app.services.checkout,
		prices,
		app.cfg.PriceCap,
		os.Stdin, os.Stdout,
	)
}

// Run blocks until the console session ends or the context is
// cancelled.
func (app *App) Run() error {
	const op = "App.Run"

	if app.watcher != nil {
		go app.watcher.Run(app.ctx)
	}

	if err := app.console.Run(app.ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (app *App) Close() {
	if app.watcher != nil {
		app.watcher.Close()
	}
	app.store.Close()
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
