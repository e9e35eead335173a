package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kesha-shop/internal/domain"
	"kesha-shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const productsCacheKey = "products:all"

type Handler struct {
	identity *services.IdentityService
	products *services.ProductService
	cart     *services.CartService
	orders   *services.OrderService
	settings *services.SettingsService
	rdb      *redis.Client
}

func NewHandler(identity *services.IdentityService, products *services.ProductService, cart *services.CartService, orders *services.OrderService, settings *services.SettingsService, rdb *redis.Client) *Handler {
	return &Handler{
		identity: identity,
		products: products,
		cart:     cart,
		orders:   orders,
		settings: settings,
		rdb:      rdb,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/admin/login", h.AdminLogin)

	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)

	r.GET("/settings/language", h.GetLanguage)
	r.PUT("/settings/language", h.SetLanguage)

	user := r.Group("", h.RequireUser)
	{
		user.GET("/auth/me", h.Me)
		user.POST("/auth/logout", h.Logout)

		user.GET("/cart", h.GetCart)
		user.POST("/cart/items", h.AddToCart)
		user.DELETE("/cart/items", h.RemoveFromCart)
		user.DELETE("/cart", h.ClearCart)
		user.POST("/checkout", h.Checkout)

		user.GET("/orders/mine", h.MyOrders)
	}

	admin := r.Group("", h.RequireAdmin)
	{
		admin.POST("/products", h.AddProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.GET("/orders", h.ListOrders)
		admin.PUT("/orders/:id/status", h.SetOrderStatus)
		admin.PATCH("/orders/:id", h.PatchOrder)

		admin.GET("/users", h.ListUsers)
	}
}

// RequireUser is the admission gate: without a current session no other
// operation is reachable.
func (h *Handler) RequireUser(c *gin.Context) {
	if h.identity.CurrentUser() == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	c.Next()
}

func (h *Handler) RequireAdmin(c *gin.Context) {
	user := h.identity.CurrentUser()
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	if !user.IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}
	c.Next()
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.identity.Register(req.Name, req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateID) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.identity.Login(req.FiveDigitID, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.identity.SetCurrentUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.identity.LoginAdmin(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.identity.SetCurrentUser(admin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, h.identity.CurrentUser())
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.identity.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if b, err := h.rdb.Get(ctx, productsCacheKey).Result(); err == nil {
			var products []domain.Product
			if json.Unmarshal([]byte(b), &products) == nil {
				c.JSON(http.StatusOK, products)
				return
			}
		}
	}

	products := h.products.Products()

	if h.rdb != nil {
		if data, err := json.Marshal(products); err == nil {
			h.rdb.Set(ctx, productsCacheKey, data, 10*time.Second)
		}
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.products.Product(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) AddProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.AddProduct(domain.Product{
		Title:        req.Title,
		Price:        req.Price,
		Description:  req.Description,
		Images:       req.Images,
		Category:     req.Category,
		DeliveryTime: req.DeliveryTime,
		Sizes:        req.Sizes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.invalidateProductsCache()
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.UpdateProduct(domain.Product{
		ID:           c.Param("id"),
		Title:        req.Title,
		Price:        req.Price,
		Description:  req.Description,
		Images:       req.Images,
		Category:     req.Category,
		DeliveryTime: req.DeliveryTime,
		Sizes:        req.Sizes,
	})
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.invalidateProductsCache()
	c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.products.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.invalidateProductsCache()
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.cart.Items(),
		"total": h.cart.Total(),
	})
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Product(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	items, err := h.cart.Add(*product, req.SelectedSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	var req RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.cart.Remove(req.ProductID, req.SelectedSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.cart.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Checkout(c *gin.Context) {
	order, err := h.orders.Checkout(c.Request.Context(), h.identity.CurrentUser())
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) MyOrders(c *gin.Context) {
	user := h.identity.CurrentUser()
	customerID := domain.GuestCustomerID
	if user != nil && user.FiveDigitID != "" {
		customerID = user.FiveDigitID
	}
	c.JSON(http.StatusOK, h.orders.OrdersForCustomer(customerID))
}

func (h *Handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.Orders())
}

func (h *Handler) SetOrderStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	var patch *domain.OrderPatch
	if req.Weight != nil || req.ShippingPrice != nil {
		patch = &domain.OrderPatch{Weight: req.Weight, ShippingPrice: req.ShippingPrice}
	}

	order, err := h.orders.SetStatus(c.Request.Context(), c.Param("id"), status, patch)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) PatchOrder(c *gin.Context) {
	var req PatchOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.PatchDetails(c.Param("id"), domain.OrderPatch{
		Weight:        req.Weight,
		ShippingPrice: req.ShippingPrice,
	})
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.identity.Users())
}

func (h *Handler) GetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language": h.settings.Language()})
}

func (h *Handler) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := domain.Language(req.Language)
	if err := h.settings.SetLanguage(lang); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang})
}

func (h *Handler) invalidateProductsCache() {
	if h.rdb == nil {
		return
	}
	h.rdb.Del(context.Background(), productsCacheKey)
}
