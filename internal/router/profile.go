package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"storefront-api/pkg/global"
	"storefront-api/pkg/models"
	"storefront-api/pkg/mongo"
)

func HealthCheck(c *gin.Context) {
	if err := mongo.GetMongoClient().Ping(c.Request.Context(), nil); err != nil {
		global.RespondError(c, http.StatusInternalServerError, "Database connection failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK", "database": "Connected"})
}

// SyncAuth runs on login: it upserts the identity record from the verified
// claims and makes sure an empty cart document exists. Both writes use
// $setOnInsert semantics, so repeated syncs never overwrite existing state.
func SyncAuth(c *gin.Context) {
	claims := CurrentClaims(c)

	if err := mongo.SyncUser(c.Request.Context(), claims); err != nil {
		log.Printf("Error syncing user: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to sync user")
		return
	}

	if err := mongo.EnsureCart(c.Request.Context(), claims.UID); err != nil {
		log.Printf("Error ensuring cart: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to sync user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUser returns the identity record, or an empty object before the first
// sync.
func GetUser(c *gin.Context) {
	claims := CurrentClaims(c)

	user, err := mongo.GetUser(c.Request.Context(), claims.UID)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		log.Printf("Error fetching user: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser merges arbitrary profile fields into the user document. The
// immutable fields are stripped rather than rejected; uid and email are
// always taken from the verified claims.
func UpdateUser(c *gin.Context) {
	claims := CurrentClaims(c)

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	for _, immutable := range []string{"_id", "uid", "email", "createdAt"} {
		delete(fields, immutable)
	}

	if err := mongo.UpdateUser(c.Request.Context(), claims, fields); err != nil {
		log.Printf("Error updating user: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetProfile returns the editable profile document, or an empty object when
// none has been saved yet.
func GetProfile(c *gin.Context) {
	claims := CurrentClaims(c)

	profile, err := mongo.GetProfile(c.Request.Context(), claims.UID)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		log.Printf("Profile API error: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	claims := CurrentClaims(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.RespondError(c, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := mongo.UpsertProfile(c.Request.Context(), claims.UID, &req); err != nil {
		log.Printf("Profile API error: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
