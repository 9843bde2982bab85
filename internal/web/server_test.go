package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopchat-labs/shopchat-backend/internal/modules/assistant"
	"github.com/shopchat-labs/shopchat-backend/internal/modules/cart"
	"github.com/shopchat-labs/shopchat-backend/internal/modules/catalog"
	"github.com/shopchat-labs/shopchat-backend/internal/session"
)

type stubAssistant struct{ reply *assistant.Reply }

func (s *stubAssistant) Respond(ctx context.Context, userID, query string) (*assistant.Reply, error) {
	return s.reply, nil
}

type stubCatalog struct{ products map[int64]*catalog.Product }

func (s *stubCatalog) SearchProducts(ctx context.Context, keyword string) ([]*catalog.Product, error) {
	return nil, nil
}

func (s *stubCatalog) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d not found", id)
	}
	return p, nil
}

type stubCart struct {
	items []*cart.Item
	adds  int
}

func (s *stubCart) Add(ctx context.Context, userID string, productID int64, productName string, quantity int) (string, error) {
	s.adds++
	return fmt.Sprintf("%s (x%d) added to cart!", productName, quantity), nil
}

func (s *stubCart) Remove(ctx context.Context, userID string, productID int64) (string, error) {
	return "Product removed from cart.", nil
}

func (s *stubCart) Clear(ctx context.Context, userID string) (string, error) {
	return "Cart cleared successfully.", nil
}

func (s *stubCart) List(ctx context.Context, userID string) ([]*cart.Item, error) {
	return s.items, nil
}

func (s *stubCart) Checkout(ctx context.Context, userID string) (string, error) {
	return "Checkout process initiated!", nil
}

func newTestRouter(t *testing.T, a assistant.Service, c catalog.Service, ct cart.Service) *chi.Mux {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	srv, err := NewServer(a, c, ct, log)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(session.Middleware)
	srv.RegisterRoutes(router)
	return router
}

func TestHomeHandler_EmptyCart(t *testing.T) {
	router := newTestRouter(t, &stubAssistant{}, &stubCatalog{}, &stubCart{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your cart is empty")
}

func TestHomeHandler_RendersCartAndBanner(t *testing.T) {
	ct := &stubCart{items: []*cart.Item{
		{ProductID: 1, ProductName: "Wireless Mouse X200", SellingPrice: 799, Quantity: 2},
	}}
	router := newTestRouter(t, &stubAssistant{}, &stubCatalog{}, ct)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?m=Cart+cleared+successfully.", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "Wireless Mouse X200 - ₹799.00 x 2")
	assert.Contains(t, body, "₹1598.00")
	assert.Contains(t, body, "Cart cleared successfully.")
}

func TestSearchHandler_RendersReplyAndProducts(t *testing.T) {
	a := &stubAssistant{reply: &assistant.Reply{
		Message: "These shoes should suit you.",
		Products: []*catalog.Product{
			{ID: 7, ProductName: "Trail Running Shoes", SellingPrice: 2499},
		},
	}}
	router := newTestRouter(t, a, &stubCatalog{}, &stubCart{})

	form := url.Values{"query": {"running shoes"}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "These shoes should suit you.")
	assert.Contains(t, body, "Trail Running Shoes")
}

func TestAddToCartHandler_RedirectsWithConfirmation(t *testing.T) {
	c := &stubCatalog{products: map[int64]*catalog.Product{
		3: {ID: 3, ProductName: "Notebook"},
	}}
	ct := &stubCart{}
	router := newTestRouter(t, &stubAssistant{}, c, ct)

	form := url.Values{"product_id": {"3"}}
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, 1, ct.adds)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "Notebook (x1) added to cart!", loc.Query().Get("m"))
}
