package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/go-storefront/internal/checkout"
	"github.com/imrishuroy/go-storefront/internal/metrics"
	"github.com/imrishuroy/go-storefront/internal/payment"
	"github.com/imrishuroy/go-storefront/internal/validation"
)

// startCheckout opens a new checkout session over the current cart,
// replacing any stale one. An empty cart is turned away at the door, and a
// session whose placement is mid-charge cannot be replaced: its completion
// would clear the cart out from under the new session.
func (h *handler) startCheckout(c *gin.Context) {
	h.mu.Lock()
	if h.session != nil && h.session.Processing() {
		h.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "order_in_progress"})
		return
	}

	sess, err := checkout.NewSession(h.cfg.Cart, h.cfg.Processor, h.cfg.Notifier)
	if err != nil {
		h.mu.Unlock()
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{"error": "empty_cart", "redirect": "/cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout_failed", "msg": err.Error()})
		return
	}

	h.session = sess
	h.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"step": sess.Step().String()})
}

func (h *handler) submitShipping(c *gin.Context) {
	sess, ok := h.activeSession(c)
	if !ok {
		return
	}
	var req validation.ShippingRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	info := checkout.ShippingInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
	}
	if err := sess.SubmitShipping(info); err != nil {
		writeCheckoutError(c, sess, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": sess.Step().String()})
}

func (h *handler) submitPayment(c *gin.Context) {
	sess, ok := h.activeSession(c)
	if !ok {
		return
	}
	var req validation.PaymentRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	card := payment.Card{
		Number: req.CardNumber,
		Name:   req.CardName,
		Expiry: req.ExpiryDate,
		CVV:    req.CVV,
	}
	if err := sess.SubmitPayment(card); err != nil {
		writeCheckoutError(c, sess, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": sess.Step().String(), "card": sess.Payment()})
}

func (h *handler) backToStep(c *gin.Context) {
	sess, ok := h.activeSession(c)
	if !ok {
		return
	}
	var req validation.BackRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	target, ok := checkout.ParseStep(req.Step)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_step", "step": req.Step})
		return
	}
	if err := sess.Back(target); err != nil {
		writeCheckoutError(c, sess, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": sess.Step().String()})
}

func (h *handler) placeOrder(c *gin.Context) {
	sess, ok := h.activeSession(c)
	if !ok {
		return
	}

	order, err := sess.PlaceOrder(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrAlreadyPlacing):
			c.JSON(http.StatusConflict, gin.H{"error": "order_in_progress"})
		case errors.Is(err, checkout.ErrOrderPlaced), errors.Is(err, checkout.ErrWrongStep):
			writeCheckoutError(c, sess, err)
		default:
			metrics.OrdersTotal.WithLabelValues("failed").Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment_failed", "msg": err.Error()})
		}
		return
	}

	metrics.OrdersTotal.WithLabelValues("placed").Inc()
	metrics.OrderAmount.Observe(order.Total)

	h.cfg.Stash.Put(order)
	h.mu.Lock()
	if h.session == sess {
		h.session = nil
	}
	h.mu.Unlock()

	c.Header("Location", fmt.Sprintf("/orders/%s/confirmation", order.OrderID))
	c.JSON(http.StatusCreated, gin.H{
		"orderId":      order.OrderID,
		"status":       "placed",
		"confirmation": fmt.Sprintf("/orders/%s/confirmation", order.OrderID),
	})
}

// orderConfirmation consumes the one-shot order handoff. A second read of the
// same id, or a reload, lands on the not-found fallback with a way back to
// the catalog.
func (h *handler) orderConfirmation(c *gin.Context) {
	id := c.Param("id")
	order, ok := h.cfg.Stash.Take(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order_not_found", "order_id": id, "redirect": "/products"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *handler) activeSession(c *gin.Context) (*checkout.Session, bool) {
	h.mu.Lock()
	sess := h.session
	h.mu.Unlock()
	if sess == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no_active_checkout", "redirect": "/cart"})
		return nil, false
	}
	return sess, true
}

func writeCheckoutError(c *gin.Context, sess *checkout.Session, err error) {
	switch {
	case errors.Is(err, checkout.ErrOrderPlaced):
		c.JSON(http.StatusConflict, gin.H{"error": "order_already_placed"})
	case errors.Is(err, checkout.ErrAlreadyPlacing):
		c.JSON(http.StatusConflict, gin.H{"error": "order_in_progress"})
	case errors.Is(err, checkout.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{"error": "wrong_step", "step": sess.Step().String()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout_failed", "msg": err.Error()})
	}
}
