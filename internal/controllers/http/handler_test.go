package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubSessionRepo struct {
	user *domain.User
}

func (s *stubSessionRepo) Current() *domain.User { return s.user }

func (s *stubSessionRepo) SetCurrent(user *domain.User) error {
	s.user = user
	return nil
}

type stubUserRepo struct {
	users []domain.User
}

func (s *stubUserRepo) All() []domain.User { return s.users }

func (s *stubUserRepo) FindByFiveDigitID(id string) (*domain.User, error) {
	for _, u := range s.users {
		if u.FiveDigitID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) Append(user domain.User) error {
	s.users = append(s.users, user)
	return nil
}

type stubProductRepo struct {
	products []domain.Product
}

func (s *stubProductRepo) All() []domain.Product { return s.products }

func (s *stubProductRepo) FindByID(id string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubProductRepo) Add(product domain.Product) error {
	s.products = append([]domain.Product{product}, s.products...)
	return nil
}

func (s *stubProductRepo) Update(product domain.Product) error {
	for i, p := range s.products {
		if p.ID == product.ID {
			s.products[i] = product
			return nil
		}
	}
	return services.ErrProductNotFound
}

func (s *stubProductRepo) Delete(id string) error {
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return nil
}

type stubCartRepo struct {
	items []domain.CartItem
}

func (s *stubCartRepo) Items() []domain.CartItem { return s.items }

func (s *stubCartRepo) Replace(items []domain.CartItem) error {
	s.items = items
	return nil
}

func (s *stubCartRepo) Clear() error {
	s.items = nil
	return nil
}

type stubOrderRepo struct {
	orders []domain.Order
}

func (s *stubOrderRepo) All() []domain.Order { return s.orders }

func (s *stubOrderRepo) FindByID(id string) (*domain.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubOrderRepo) Prepend(order domain.Order) error {
	s.orders = append([]domain.Order{order}, s.orders...)
	return nil
}

func (s *stubOrderRepo) Update(order domain.Order) error {
	for i, o := range s.orders {
		if o.ID == order.ID {
			s.orders[i] = order
			return nil
		}
	}
	return services.ErrOrderNotFound
}

type stubSettingsRepo struct {
	lang domain.Language
}

func (s *stubSettingsRepo) Language() domain.Language {
	if s.lang == "" {
		return domain.DefaultLanguage
	}
	return s.lang
}

func (s *stubSettingsRepo) SetLanguage(lang domain.Language) error {
	s.lang = lang
	return nil
}

func setupRouter(session *stubSessionRepo, products *stubProductRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cart := &stubCartRepo{}
	identity := services.NewIdentityService(&stubUserRepo{}, session, services.AdminCredentials{
		Username: "admin",
		Password: "secret",
	})
	handler := NewHandler(
		identity,
		services.NewProductService(products),
		services.NewCartService(cart),
		services.NewOrderService(&stubOrderRepo{}, cart, nil),
		services.NewSettingsService(&stubSettingsRepo{}),
		nil,
	)

	r := gin.New()
	handler.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_SessionGate(t *testing.T) {
	r := setupRouter(&stubSessionRepo{}, &stubProductRepo{})

	w := doJSON(t, r, http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/checkout", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Product listing stays public.
	w = doJSON(t, r, http.MethodGet, "/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AdminGate(t *testing.T) {
	customer := &domain.User{ID: "u1", Role: domain.RoleCustomer, FiveDigitID: "48213"}
	r := setupRouter(&stubSessionRepo{user: customer}, &stubProductRepo{})

	w := doJSON(t, r, http.MethodPost, "/products", ProductRequest{Title: "Mug", Price: 50})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_RegisterAndLogin(t *testing.T) {
	session := &stubSessionRepo{}
	r := setupRouter(session, &stubProductRepo{})

	w := doJSON(t, r, http.MethodPost, "/auth/register", RegisterRequest{
		Name:       "Aya",
		Identifier: "+993 61 123456",
		Password:   "pw",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var user domain.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Len(t, user.FiveDigitID, 5)

	w = doJSON(t, r, http.MethodPost, "/auth/login", LoginRequest{
		FiveDigitID: user.FiveDigitID,
		Password:    "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, session.user)

	w = doJSON(t, r, http.MethodPost, "/auth/login", LoginRequest{
		FiveDigitID: user.FiveDigitID,
		Password:    "pw",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, session.user)
}

func TestHandler_CartAndCheckoutFlow(t *testing.T) {
	customer := &domain.User{
		ID:          "u1",
		Identifier:  "+993 61 123456",
		Role:        domain.RoleCustomer,
		FiveDigitID: "48213",
	}
	products := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Title: "Mug", Price: 50},
	}}
	r := setupRouter(&stubSessionRepo{user: customer}, products)

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/cart/items", AddToCartRequest{ProductID: "p1"})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Items []domain.CartItem `json:"items"`
		Total int64             `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(100), cart.Total)

	w = doJSON(t, r, http.MethodPost, "/checkout", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	var order domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "48213", order.CustomerID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Len(t, order.Timeline, 1)

	// Checkout left the cart empty; a second attempt has nothing to buy.
	w = doJSON(t, r, http.MethodPost, "/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/orders/mine", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var mine []domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)
}

func TestHandler_AddToCart_UnknownProduct(t *testing.T) {
	customer := &domain.User{ID: "u1", Role: domain.RoleCustomer, FiveDigitID: "48213"}
	r := setupRouter(&stubSessionRepo{user: customer}, &stubProductRepo{})

	w := doJSON(t, r, http.MethodPost, "/cart/items", AddToCartRequest{ProductID: "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SetLanguage(t *testing.T) {
	r := setupRouter(&stubSessionRepo{}, &stubProductRepo{})

	w := doJSON(t, r, http.MethodPut, "/settings/language", SetLanguageRequest{Language: "tm"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/settings/language", SetLanguageRequest{Language: "xx"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
