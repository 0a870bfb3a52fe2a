// Package catalog consumes the external read-only product API. The catalog
// is not owned by this service; it is fetched for display only and order
// pricing never reads from it.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront-api/pkg/global"
	"storefront-api/pkg/models"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: global.GetEnvOrDefault("CATALOG_BASE_URL", "https://dummyjson.com"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type productsResponse struct {
	Products []models.Product `json:"products"`
}

func (c *Client) fetchProducts(ctx context.Context, path string) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var body productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("catalog response: %w", err)
	}
	return body.Products, nil
}

// List returns the first 100 catalog products.
func (c *Client) List(ctx context.Context) ([]models.Product, error) {
	return c.fetchProducts(ctx, "/products?limit=100")
}

// Search runs a full-text search on the catalog.
func (c *Client) Search(ctx context.Context, q string) ([]models.Product, error) {
	return c.fetchProducts(ctx, "/products/search?q="+url.QueryEscape(q))
}

// ByCategory lists the products of one category.
func (c *Client) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return c.fetchProducts(ctx, "/products/category/"+url.PathEscape(category))
}

// Query fetches products for the given filters. Category takes precedence
// over search, matching how the storefront builds its listing pages; price
// bounds and sorting are applied locally.
func (c *Client) Query(ctx context.Context, q *models.ProductQuery) ([]models.Product, error) {
	var (
		products []models.Product
		err      error
	)

	switch {
	case q.Category != "":
		products, err = c.ByCategory(ctx, q.Category)
	case q.Search != "":
		products, err = c.Search(ctx, q.Search)
	default:
		products, err = c.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return q.Apply(products), nil
}

// Categories lists the catalog's category slugs.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/category-list", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var categories []string
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		return nil, fmt.Errorf("catalog response: %w", err)
	}
	return categories, nil
}
