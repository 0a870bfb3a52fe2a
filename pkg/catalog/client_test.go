package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-api/pkg/models"
)

func newTestClient(url string) *Client {
	return &Client{baseURL: url, client: &http.Client{Timeout: 5 * time.Second}}
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	all := []models.Product{
		{ID: 1, Title: "Phone", Price: 549.99, Category: "smartphones"},
		{ID: 2, Title: "Laptop", Price: 1299.0, Category: "laptops"},
		{ID: 3, Title: "Charger", Price: 19.99, Category: "smartphones"},
	}
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"products": all})
	})
	mux.HandleFunc("/products/search", func(w http.ResponseWriter, r *http.Request) {
		var hits []models.Product
		if r.URL.Query().Get("q") == "phone" {
			hits = all[:1]
		}
		json.NewEncoder(w).Encode(map[string]any{"products": hits})
	})
	mux.HandleFunc("/products/category/smartphones", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"products": []models.Product{all[0], all[2]}})
	})
	mux.HandleFunc("/products/category-list", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{"smartphones", "laptops"})
	})
	return httptest.NewServer(mux)
}

func TestQueryList(t *testing.T) {
	server := testServer(t)
	defer server.Close()

	got, err := newTestClient(server.URL).Query(context.Background(), &models.ProductQuery{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestQuerySearch(t *testing.T) {
	server := testServer(t)
	defer server.Close()

	got, err := newTestClient(server.URL).Query(context.Background(), &models.ProductQuery{Search: "phone"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("got %+v, want the phone", got)
	}
}

func TestQueryCategoryWithPriceFilterAndSort(t *testing.T) {
	server := testServer(t)
	defer server.Close()

	max := 600.0
	got, err := newTestClient(server.URL).Query(context.Background(), &models.ProductQuery{
		Category: "smartphones",
		MaxPrice: &max,
		Sort:     "price-asc",
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Errorf("order = [%d, %d], want [3, 1]", got[0].ID, got[1].ID)
	}
}

func TestCategories(t *testing.T) {
	server := testServer(t)
	defer server.Close()

	got, err := newTestClient(server.URL).Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(got) != 2 || got[0] != "smartphones" {
		t.Errorf("categories = %v", got)
	}
}

func TestUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).List(context.Background()); err == nil {
		t.Error("expected error on upstream failure")
	}
}
