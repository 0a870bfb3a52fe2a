package router

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-api/pkg/global"
	"storefront-api/pkg/models"
	"storefront-api/pkg/redis"
)

// GetProducts proxies the external catalog with cache-aside Redis caching.
// The catalog is display-only; nothing here feeds order pricing.
func GetProducts(c *gin.Context) {
	query := &models.ProductQuery{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			query.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			query.MaxPrice = &v
		}
	}

	cacheKey := fmt.Sprintf("q=%s&category=%s&min=%s&max=%s&sort=%s",
		query.Search, query.Category, c.Query("minPrice"), c.Query("maxPrice"), query.Sort)

	ctx := c.Request.Context()

	if products, err := redis.GetProductListingFromCache(ctx, cacheKey); err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := catalogClient.Query(ctx, query)
	if err != nil {
		log.Printf("Error fetching products from catalog: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	if cacheErr := redis.CacheProductListing(ctx, cacheKey, products); cacheErr != nil {
		log.Printf("Warning: failed to cache product listing: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, products)
}

// GetProductCategories proxies the catalog's category list, cached the same
// way.
func GetProductCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if categories, err := redis.GetCategoriesFromCache(ctx); err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, categories)
		return
	}

	categories, err := catalogClient.Categories(ctx)
	if err != nil {
		log.Printf("Error fetching categories from catalog: %v", err)
		global.RespondError(c, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	if cacheErr := redis.CacheCategories(ctx, categories); cacheErr != nil {
		log.Printf("Warning: failed to cache categories: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, categories)
}
