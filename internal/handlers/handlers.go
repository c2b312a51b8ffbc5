package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/imrishuroy/go-storefront/internal/auth"
	"github.com/imrishuroy/go-storefront/internal/cart"
	"github.com/imrishuroy/go-storefront/internal/catalog"
	"github.com/imrishuroy/go-storefront/internal/checkout"
	"github.com/imrishuroy/go-storefront/internal/notify"
	"github.com/imrishuroy/go-storefront/internal/payment"
	"github.com/imrishuroy/go-storefront/internal/validation"
	"github.com/imrishuroy/go-storefront/internal/wishlist"
)

// HandlerConfig groups dependencies for the storefront handlers.
type HandlerConfig struct {
	Catalog   *catalog.Catalog
	Cart      *cart.Engine
	Wishlist  *wishlist.Engine
	Auth      *auth.Service
	Processor payment.Processor
	Notifier  notify.Notifier
	Stash     *checkout.Stash
}

// handler carries the wired dependencies plus the single active checkout
// session. The storefront is one shopper's worth of state, so one session
// slot is the whole session model.
type handler struct {
	cfg      HandlerConfig
	validate *validatorv10.Validate

	mu      sync.Mutex
	session *checkout.Session
}

// RegisterRoutes registers the storefront API.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	h := &handler{cfg: cfg, validate: validation.New()}

	r.GET("/products", h.listProducts)
	r.GET("/products/:id", h.getProduct)

	r.GET("/cart", h.getCart)
	r.POST("/cart/items", h.addCartItem)
	r.PATCH("/cart/items/:id", h.updateCartItem)
	r.DELETE("/cart/items/:id", h.removeCartItem)

	r.GET("/wishlist", h.getWishlist)
	r.POST("/wishlist/toggle", h.toggleWishlist)
	r.DELETE("/wishlist/:id", h.removeWishlistItem)

	r.POST("/auth/login", h.login)
	r.POST("/auth/signup", h.signup)
	r.POST("/auth/logout", h.logout)
	r.GET("/auth/me", h.currentUser)

	r.POST("/checkout", h.startCheckout)
	r.POST("/checkout/shipping", h.submitShipping)
	r.POST("/checkout/payment", h.submitPayment)
	r.POST("/checkout/back", h.backToStep)
	r.POST("/checkout/place-order", h.placeOrder)
	r.GET("/orders/:id/confirmation", h.orderConfirmation)
}

func (h *handler) listProducts(c *gin.Context) {
	if cat := c.Query("category"); cat != "" {
		c.JSON(http.StatusOK, gin.H{"products": h.cfg.Catalog.ByCategory(cat)})
		return
	}
	if c.Query("featured") == "true" {
		c.JSON(http.StatusOK, gin.H{"products": h.cfg.Catalog.Featured()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.cfg.Catalog.List()})
}

func (h *handler) getProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, ok := h.cfg.Catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found", "product_id": id})
		return
	}
	c.JSON(http.StatusOK, p)
}

// idParam parses the :id path param, writing the 400 itself on garbage.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_product_id"})
		return 0, false
	}
	return id, true
}
