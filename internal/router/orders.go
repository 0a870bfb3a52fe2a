package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"storefront-api/pkg/global"
	"storefront-api/pkg/models"
)

// CreateOrder validates the checkout payload, prices it in cents and
// persists a PENDING order. The caller's cart is emptied only after the
// order insert succeeds; a cart-clear failure is logged and swallowed
// because the order is already the durable source of truth.
func CreateOrder(c *gin.Context) {
	claims := CurrentClaims(c)

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := req.Validate(); err != nil {
		switch {
		case errors.Is(err, models.ErrItemsRequired):
			global.RespondError(c, http.StatusBadRequest, "Items required")
		case errors.Is(err, models.ErrInvalidItem):
			global.RespondError(c, http.StatusBadRequest, "Invalid item payload")
		default:
			global.RespondError(c, http.StatusBadRequest, "Invalid shipping info")
		}
		return
	}

	order := req.ToOrder(claims.UID, global.GetShippingFeeCents())

	orderID, err := orderStore.InsertOrder(c.Request.Context(), order)
	if err != nil {
		log.Printf("Error inserting order: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if err := orderStore.ClearCart(c.Request.Context(), claims.UID); err != nil {
		log.Printf("Warning: failed to clear cart for %s after order %s: %v",
			claims.UID, orderID.Hex(), err)
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "orderId": orderID.Hex()})
}

// GetOrders lists the caller's orders, newest first.
func GetOrders(c *gin.Context) {
	claims := CurrentClaims(c)

	orders, err := orderStore.ListOrdersByUser(c.Request.Context(), claims.UID)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderByID returns one of the caller's orders. An order owned by someone
// else gets the same 404 as one that does not exist.
func GetOrderByID(c *gin.Context) {
	claims := CurrentClaims(c)

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := orderStore.GetOrderForUser(c.Request.Context(), id, claims.UID)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			global.RespondError(c, http.StatusNotFound, "Not found")
			return
		}
		log.Printf("Error fetching order: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to fetch order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// CancelOrder handles PATCH /orders/:id. Only PENDING -> CANCELLED is
// accepted here; the conditional update in the store decides races.
func CancelOrder(c *gin.Context) {
	claims := CurrentClaims(c)

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if body.Status != models.StatusCancelled {
		global.RespondError(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	matched, err := orderStore.TransitionOrder(c.Request.Context(), id, claims.UID, models.StatusCancelled)
	if err != nil {
		log.Printf("Error cancelling order: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to cancel order")
		return
	}
	if !matched {
		global.RespondError(c, http.StatusNotFound, "Order not found or cannot be cancelled")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateOrderStatus handles PATCH /orders?id=. It accepts either terminal
// status; marking PAID is the simulated-payment flow and is a trusted
// assertion by the authenticated owner, not a verified capture.
func UpdateOrderStatus(c *gin.Context) {
	claims := CurrentClaims(c)

	rawID := c.Query("id")
	if rawID == "" {
		global.RespondError(c, http.StatusBadRequest, "Order ID required")
		return
	}
	id, err := bson.ObjectIDFromHex(rawID)
	if err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !models.CanTransition(models.StatusPending, body.Status) {
		global.RespondError(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	matched, err := orderStore.TransitionOrder(c.Request.Context(), id, claims.UID, body.Status)
	if err != nil {
		log.Printf("Error updating order status: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}
	if !matched {
		global.RespondError(c, http.StatusNotFound, "Order not found or cannot be updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
