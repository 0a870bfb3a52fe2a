package global

import (
	"context"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"storefront-api/pkg/money"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func GetMongoURI() string {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI is not set in environment variables")
	}
	return mongoURI
}

func GetDatabaseName() string {
	return GetEnvOrDefault("MONGODB_DATABASE", "ecommerce")
}

var (
	shippingFeeOnce  sync.Once
	shippingFeeCents int64
)

func parseShippingFeeCents(raw string) int64 {
	fee, err := strconv.ParseFloat(raw, 64)
	if err != nil || fee < 0 {
		log.Printf("Warning: invalid SHIPPING_FEE %q, using default 10.00", raw)
		fee = 10.00
	}
	return money.ToCents(fee)
}

// GetShippingFeeCents returns the flat shipping fee in cents. Configured as a
// decimal string via SHIPPING_FEE (e.g. "10.00"); read and parsed once, on
// first use.
func GetShippingFeeCents() int64 {
	shippingFeeOnce.Do(func() {
		shippingFeeCents = parseShippingFeeCents(GetEnvOrDefault("SHIPPING_FEE", "10.00"))
	})
	return shippingFeeCents
}
