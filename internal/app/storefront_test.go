package app_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/mux"
	"github.com/nikolayk812/luxe-storefront/internal/api"
	"github.com/nikolayk812/luxe-storefront/internal/app"
	"github.com/nikolayk812/luxe-storefront/internal/cart"
	"github.com/nikolayk812/luxe-storefront/internal/catalog"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/nikolayk812/luxe-storefront/internal/notify"
	"github.com/nikolayk812/luxe-storefront/internal/repository"
	"github.com/nikolayk812/luxe-storefront/internal/router"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productsJSON = `{"products":[
 {"id":"a","name":"Canvas Tote","brand":"Carry","price":20,"categorySlug":"fashion","categoryName":"Fashion","rating":4.1,"image":"a.jpg"},
 {"id":"b","name":"Desk Lamp","brand":"Lumen","price":35,"categorySlug":"home-living","categoryName":"Home & Living","rating":4.7,"image":"b.jpg"},
 {"id":"c","name":"Silk Scarf","brand":"Carry","price":15,"categorySlug":"fashion","categoryName":"Fashion","rating":4.9,"image":"c.jpg"}
]}`
	categoriesJSON = `{"categories":[{"slug":"fashion","name":"Fashion"},{"slug":"home-living","name":"Home & Living"}]}`
)

type scrollCounter struct {
	n int
}

func (s *scrollCounter) ScrollToTop() { s.n++ }

type storefrontSuite struct {
	suite.Suite

	server      *httptest.Server
	mu          sync.Mutex
	orderStatus int
	orderBody   string
	orderBodies []map[string]any

	storage  *repository.MemoryStorage
	rec      *notify.Recorder
	viewport *scrollCounter
	front    *app.Storefront
}

func TestStorefrontSuite(t *testing.T) {
	suite.Run(t, new(storefrontSuite))
}

func (suite *storefrontSuite) SetupSuite() {
	r := mux.NewRouter()
	r.HandleFunc("/api/products", writeString(productsJSON)).Methods(http.MethodGet)
	r.HandleFunc("/api/categories", writeString(categoriesJSON)).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] != "b" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"product":{"id":"b","name":"Desk Lamp","price":35},"related":[{"id":"a","name":"Canvas Tote","price":20}]}`)
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		suite.mu.Lock()
		defer suite.mu.Unlock()

		suite.orderBodies = append(suite.orderBodies, body)
		w.WriteHeader(suite.orderStatus)
		_, _ = io.WriteString(w, suite.orderBody)
	}).Methods(http.MethodPost)

	suite.server = httptest.NewServer(r)
}

func (suite *storefrontSuite) TearDownSuite() {
	suite.server.Close()
}

func (suite *storefrontSuite) SetupTest() {
	suite.mu.Lock()
	defer suite.mu.Unlock()

	suite.storage = repository.NewMemory()
	suite.orderStatus = http.StatusCreated
	suite.orderBody = `{"order":{"id":"ORD-7","total":75}}`
	suite.orderBodies = nil
	suite.front = suite.newStorefront()
}

func (suite *storefrontSuite) newStorefront() *app.Storefront {
	t := suite.T()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := api.New(suite.server.URL, suite.server.Client())
	require.NoError(t, err)

	suite.rec = &notify.Recorder{}
	suite.viewport = &scrollCounter{}

	front := app.New(app.Deps{
		Cart:     cart.New(t.Context(), suite.storage, suite.rec, log),
		Catalog:  client,
		Orders:   client,
		Notifier: suite.rec,
		Viewport: suite.viewport,
		Log:      log,
	})
	front.Start(t.Context(), "/")

	return front
}

func (suite *storefrontSuite) TestHomeView() {
	t := suite.T()

	v := suite.front.View(t.Context())

	assert.Equal(t, router.PageHome, v.Page.Name)
	assert.Len(t, v.Featured, 3)
	assert.Len(t, v.Categories, 2)
	assert.Zero(t, v.CartCount)
	assert.Zero(t, suite.viewport.n, "initial render does not scroll")
}

func (suite *storefrontSuite) TestCategoryAndSearchViews() {
	t := suite.T()
	ctx := t.Context()

	suite.front.Navigate(router.Category("fashion"))
	suite.front.SetSort(catalog.SortPriceAsc)

	v := suite.front.View(ctx)
	require.NotNil(t, v.Category)
	assert.Equal(t, "Fashion", v.Category.Name)
	assert.Equal(t, []domain.ProductID{"c", "a"}, productIDs(v.Products))
	assert.Equal(t, 1, suite.viewport.n)

	fragment, ok := router.Search("lamp")
	require.True(t, ok)
	suite.front.Navigate(fragment)

	v = suite.front.View(ctx)
	assert.Equal(t, "lamp", v.Query)
	assert.Equal(t, catalog.SortDefault, v.Sort, "sort resets on page change")
	assert.Equal(t, []domain.ProductID{"b"}, productIDs(v.Products))
}

func (suite *storefrontSuite) TestProductView() {
	t := suite.T()
	ctx := t.Context()

	suite.front.Navigate(router.Product("b"))
	v := suite.front.View(ctx)
	require.NotNil(t, v.Detail)
	assert.Equal(t, "Desk Lamp", v.Detail.Product.Name)
	assert.Len(t, v.Detail.Related, 1)

	suite.front.Navigate(router.Product("zzz"))
	v = suite.front.View(ctx)
	assert.Nil(t, v.Detail)
	assert.True(t, v.NotFound)
}

func (suite *storefrontSuite) TestUnknownRouteFallsBackHome() {
	t := suite.T()

	suite.front.Navigate("/category")
	assert.Equal(t, router.PageHome, suite.front.Page().Name)
	assert.Equal(t, "/category", suite.front.Location())
}

func (suite *storefrontSuite) TestCartAndCheckoutFlow() {
	t := suite.T()
	ctx := t.Context()

	require.NoError(t, suite.front.AddProduct(ctx, "a"))
	require.NoError(t, suite.front.AddProduct(ctx, "a"))
	require.NoError(t, suite.front.AddProduct(ctx, "b"))
	require.ErrorIs(t, suite.front.AddProduct(ctx, "nope"), app.ErrProductNotFound)

	suite.front.Navigate(router.Cart())
	v := suite.front.View(ctx)
	assert.Equal(t, 3, v.CartCount)
	assert.True(t, decimal.NewFromInt(75).Equal(v.Quote.Total.Amount))
	assert.True(t, v.Quote.FreeShipping())

	require.NoError(t, suite.front.Cart().RemoveFromCart(ctx, "b"))
	v = suite.front.View(ctx)
	assert.True(t, decimal.NewFromInt(40).Equal(v.Quote.Subtotal.Amount))
	assert.True(t, decimal.RequireFromString("9.99").Equal(v.Quote.Shipping.Amount))

	suite.front.Navigate(router.Checkout())
	suite.rec.Reset()

	order, err := suite.front.PlaceOrder(ctx, validAddress(), domain.PaymentCashOnDelivery)
	require.NoError(t, err)
	assert.Equal(t, "ORD-7", order.ID)

	assert.Equal(t, router.PageOrderConfirmation, suite.front.Page().Name)
	v = suite.front.View(ctx)
	require.NotNil(t, v.Order)
	assert.Equal(t, "ORD-7", v.Order.ID)
	assert.Zero(t, v.CartCount)
	assert.Equal(t, []notify.Message{{Level: notify.LevelSuccess, Text: "Order placed successfully!"}}, suite.rec.Messages())

	suite.mu.Lock()
	defer suite.mu.Unlock()
	require.Len(t, suite.orderBodies, 1)
	assert.Equal(t, 49.99, suite.orderBodies[0]["total"])
}

func (suite *storefrontSuite) TestCheckoutRejected() {
	t := suite.T()
	ctx := t.Context()

	suite.mu.Lock()
	suite.orderStatus = http.StatusUnprocessableEntity
	suite.orderBody = `{"error":"Delivery not available"}`
	suite.mu.Unlock()

	require.NoError(t, suite.front.AddProduct(ctx, "b"))
	suite.front.Navigate(router.Checkout())
	suite.rec.Reset()

	_, err := suite.front.PlaceOrder(ctx, validAddress(), domain.PaymentCashOnDelivery)
	require.Error(t, err)

	assert.Equal(t, router.PageCheckout, suite.front.Page().Name)
	assert.Equal(t, 1, suite.front.Cart().Count())
	_, ok := suite.front.Confirmation()
	assert.False(t, ok)
	assert.Equal(t, []notify.Message{{Level: notify.LevelFailure, Text: "Delivery not available"}}, suite.rec.Messages())
}

func (suite *storefrontSuite) TestCartSurvivesRestart() {
	t := suite.T()
	ctx := t.Context()

	require.NoError(t, suite.front.AddProduct(ctx, "c"))
	require.NoError(t, suite.front.AddProduct(ctx, "a"))
	before := suite.front.Cart().Lines()

	restarted := suite.newStorefront()

	assert.Empty(t, cmp.Diff(before, restarted.Cart().Lines()))
}

func (suite *storefrontSuite) TestLocationChangedDoesNotScroll() {
	t := suite.T()

	suite.front.LocationChanged("/cart")

	assert.Equal(t, router.PageCart, suite.front.Page().Name)
	assert.Zero(t, suite.viewport.n)
}

func TestStorefront_CatalogUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := api.New(srv.URL, srv.Client())
	require.NoError(t, err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	front := app.New(app.Deps{
		Cart:     cart.New(t.Context(), repository.NewMemory(), nil, log),
		Catalog:  client,
		Orders:   client,
		Notifier: &notify.Recorder{},
		Log:      log,
	})
	front.Start(t.Context(), "/category/all")

	v := front.View(t.Context())
	assert.Equal(t, router.PageCategory, v.Page.Name)
	assert.Empty(t, v.Products)
	assert.Empty(t, v.Categories)
}

func writeString(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func productIDs(products []domain.Product) []domain.ProductID {
	var ids []domain.ProductID
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func validAddress() domain.Address {
	return domain.Address{
		FullName: "Asha Rao",
		Phone:    "+91 98200 00000",
		Email:    "asha@example.com",
		Line1:    "12 MG Road",
		City:     "Pune",
		State:    "MH",
		PinCode:  "411001",
	}
}
