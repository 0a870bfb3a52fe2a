package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-api/pkg/models"
)

// Catalog listings change rarely and are fetched from a third-party API, so
// a short TTL keeps the proxy cheap without serving stale prices for long.
const listingTTL = 5 * time.Minute

// CacheProductListing stores one filtered catalog listing under its query key.
func CacheProductListing(ctx context.Context, key string, products []models.Product) error {
	client := RedisClient()
	defer client.Close()

	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal product listing: %w", err)
	}

	if err := client.Set(ctx, listingKey(key), payload, listingTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache product listing: %w", err)
	}
	return nil
}

// GetProductListingFromCache returns the cached listing for a query key, or
// an error on cache miss.
func GetProductListingFromCache(ctx context.Context, key string) ([]models.Product, error) {
	client := RedisClient()
	defer client.Close()

	payload, err := client.Get(ctx, listingKey(key)).Result()
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product listing: %w", err)
	}
	return products, nil
}

// CacheCategories stores the catalog's category list.
func CacheCategories(ctx context.Context, categories []string) error {
	client := RedisClient()
	defer client.Close()

	payload, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	if err := client.Set(ctx, "catalog:categories", payload, listingTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache categories: %w", err)
	}
	return nil
}

// GetCategoriesFromCache returns the cached category list, or an error on
// cache miss.
func GetCategoriesFromCache(ctx context.Context) ([]string, error) {
	client := RedisClient()
	defer client.Close()

	payload, err := client.Get(ctx, "catalog:categories").Result()
	if err != nil {
		return nil, err
	}

	var categories []string
	if err := json.Unmarshal([]byte(payload), &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

func listingKey(key string) string {
	return fmt.Sprintf("catalog:listing:%s", key)
}
