package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"promo-shop/cart"
	"promo-shop/middleware"
	"promo-shop/models"
	"promo-shop/repositories"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	products map[int]*models.Product
}

func (f *fakeCatalog) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

type cartEnvelope struct {
	Success bool          `json:"success"`
	Data    cart.Snapshot `json:"data"`
}

func newCartRouter() (*gin.Engine, *cart.Manager) {
	gin.SetMode(gin.TestMode)

	catalog := &fakeCatalog{products: map[int]*models.Product{
		1: {ID: 1, Name: "Branded Mug", Price: decimal.RequireFromString("150"), InStock: true},
		2: {ID: 2, Name: "Golf Shirt", Price: decimal.RequireFromString("299.50"), InStock: true},
		3: {ID: 3, Name: "Discontinued Pen", Price: decimal.RequireFromString("10"), InStock: false},
	}}

	manager := cart.NewManager(nil, time.Hour)
	ctrl := NewCartController(manager, catalog)

	router := gin.New()
	group := router.Group("/", middleware.SessionMiddleware())
	group.GET("/cart", ctrl.GetCart)
	group.POST("/cart/items", ctrl.AddItem)
	group.PATCH("/cart/items/:id", ctrl.UpdateItem)
	group.DELETE("/cart/items/:id", ctrl.RemoveItem)
	group.DELETE("/cart", ctrl.ClearCart)
	return router, manager
}

func doJSON(t *testing.T, router *gin.Engine, method, path, session string, body interface{}) (*httptest.ResponseRecorder, cartEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope cartEnvelope
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func TestGetCartMintsSessionID(t *testing.T) {
	router, _ := newCartRouter()

	w, envelope := doJSON(t, router, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.SessionHeader))
	assert.Empty(t, envelope.Data.Items)
}

func TestAddItemTwiceIncrementsQuantity(t *testing.T) {
	router, _ := newCartRouter()

	body := models.AddCartItemRequest{ProductID: 1, Quantity: 1}
	doJSON(t, router, http.MethodPost, "/cart/items", "s1", body)
	w, envelope := doJSON(t, router, http.MethodPost, "/cart/items", "s1", body)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, 2, envelope.Data.Items[0].Quantity)
	assert.True(t, envelope.Data.Total.Equal(decimal.RequireFromString("300")))
}

func TestAddUnknownProductReturns404(t *testing.T) {
	router, manager := newCartRouter()

	w, _ := doJSON(t, router, http.MethodPost, "/cart/items", "s1", models.AddCartItemRequest{ProductID: 99})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, manager.Snapshot(context.Background(), "s1").Items)
}

func TestAddOutOfStockProductRejected(t *testing.T) {
	router, _ := newCartRouter()

	w, _ := doJSON(t, router, http.MethodPost, "/cart/items", "s1", models.AddCartItemRequest{ProductID: 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItemToZeroRemovesIt(t *testing.T) {
	router, _ := newCartRouter()

	doJSON(t, router, http.MethodPost, "/cart/items", "s1", models.AddCartItemRequest{ProductID: 1, Quantity: 3})
	w, envelope := doJSON(t, router, http.MethodPatch, "/cart/items/1", "s1", models.UpdateCartItemRequest{Quantity: 0})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, envelope.Data.Items)
	assert.Equal(t, 0, envelope.Data.ItemCount)
}

func TestRemoveAndClear(t *testing.T) {
	router, _ := newCartRouter()

	doJSON(t, router, http.MethodPost, "/cart/items", "s1", models.AddCartItemRequest{ProductID: 1, Quantity: 1})
	doJSON(t, router, http.MethodPost, "/cart/items", "s1", models.AddCartItemRequest{ProductID: 2, Quantity: 2})

	_, envelope := doJSON(t, router, http.MethodDelete, "/cart/items/1", "s1", nil)
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, 2, envelope.Data.Items[0].ID)

	_, envelope = doJSON(t, router, http.MethodDelete, "/cart", "s1", nil)
	assert.Empty(t, envelope.Data.Items)
	assert.True(t, envelope.Data.Total.IsZero())
}

func TestCartsAreSessionScoped(t *testing.T) {
	router, _ := newCartRouter()

	doJSON(t, router, http.MethodPost, "/cart/items", "alice", models.AddCartItemRequest{ProductID: 1, Quantity: 1})
	_, envelope := doJSON(t, router, http.MethodGet, "/cart", "bob", nil)

	assert.Empty(t, envelope.Data.Items)
}
