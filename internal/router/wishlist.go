package router

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-api/pkg/global"
	"storefront-api/pkg/models"
	"storefront-api/pkg/mongo"
)

// GetWishlist returns the caller's wishlist.
func GetWishlist(c *gin.Context) {
	claims := CurrentClaims(c)

	items, err := mongo.GetWishlistItems(c.Request.Context(), claims.UID)
	if err != nil {
		log.Printf("Error fetching wishlist: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to fetch wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": items})
}

// AddToWishlist adds an item, idempotently by product id, and returns the
// resulting list.
func AddToWishlist(c *gin.Context) {
	claims := CurrentClaims(c)

	var req models.WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	items, err := mongo.GetWishlistItems(c.Request.Context(), claims.UID)
	if err != nil {
		log.Printf("Error fetching wishlist: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}

	updated := models.AddWishlistItem(items, req.ToItem())
	if len(updated) != len(items) {
		if err := mongo.SetWishlistItems(c.Request.Context(), claims.UID, updated); err != nil {
			log.Printf("Error saving wishlist: %v", err)
			global.RespondError(c, http.StatusInternalServerError, "Failed to update wishlist")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": updated})
}

// RemoveFromWishlist drops one product id from the list and returns the
// remainder.
func RemoveFromWishlist(c *gin.Context) {
	claims := CurrentClaims(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	items, err := mongo.GetWishlistItems(c.Request.Context(), claims.UID)
	if err != nil {
		log.Printf("Error fetching wishlist: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}

	updated := models.RemoveWishlistItem(items, id)
	if err := mongo.SetWishlistItems(c.Request.Context(), claims.UID, updated); err != nil {
		log.Printf("Error saving wishlist: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": updated})
}
