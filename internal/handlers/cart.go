package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/go-storefront/internal/metrics"
	"github.com/imrishuroy/go-storefront/internal/validation"
)

func (h *handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartPayload())
}

func (h *handler) addCartItem(c *gin.Context) {
	var req validation.AddCartItemRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	p, ok := h.cfg.Catalog.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found", "product_id": req.ProductID})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if !h.cfg.Cart.Add(p, quantity) {
		metrics.CartMutationsTotal.WithLabelValues("add", "rejected").Inc()
		c.JSON(http.StatusConflict, gin.H{"error": "stock_limit_reached", "product_id": req.ProductID})
		return
	}
	metrics.CartMutationsTotal.WithLabelValues("add", "accepted").Inc()
	c.JSON(http.StatusOK, h.cartPayload())
}

func (h *handler) updateCartItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req validation.UpdateCartItemRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	h.cfg.Cart.UpdateQuantity(id, req.Quantity)
	metrics.CartMutationsTotal.WithLabelValues("update", "accepted").Inc()
	c.JSON(http.StatusOK, h.cartPayload())
}

func (h *handler) removeCartItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.cfg.Cart.Remove(id)
	metrics.CartMutationsTotal.WithLabelValues("remove", "accepted").Inc()
	c.JSON(http.StatusOK, h.cartPayload())
}

func (h *handler) cartPayload() gin.H {
	return gin.H{
		"items":    h.cfg.Cart.Items(),
		"subtotal": h.cfg.Cart.Total(),
		"count":    h.cfg.Cart.Count(),
	}
}

func (h *handler) getWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.cfg.Wishlist.Items()})
}

func (h *handler) toggleWishlist(c *gin.Context) {
	var req validation.ToggleWishlistRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	p, ok := h.cfg.Catalog.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found", "product_id": req.ProductID})
		return
	}

	added := h.cfg.Wishlist.Toggle(p)
	direction := "removed"
	if added {
		direction = "added"
	}
	metrics.WishlistTogglesTotal.WithLabelValues(direction).Inc()
	c.JSON(http.StatusOK, gin.H{"inWishlist": added, "items": h.cfg.Wishlist.Items()})
}

func (h *handler) removeWishlistItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.cfg.Wishlist.Remove(id)
	c.JSON(http.StatusOK, gin.H{"items": h.cfg.Wishlist.Items()})
}
