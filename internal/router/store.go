package router

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"storefront-api/pkg/models"
	"storefront-api/pkg/mongo"
)

// OrderStore is the slice of the persistence layer the order handlers use.
// It is injected next to the auth verifier so tests can substitute a fake
// and drive the success and race paths without a database.
type OrderStore interface {
	InsertOrder(ctx context.Context, order *models.Order) (bson.ObjectID, error)
	ListOrdersByUser(ctx context.Context, uid string) ([]models.Order, error)
	GetOrderForUser(ctx context.Context, id bson.ObjectID, uid string) (*models.Order, error)
	TransitionOrder(ctx context.Context, id bson.ObjectID, uid, target string) (bool, error)
	ClearCart(ctx context.Context, uid string) error
}

// MongoOrderStore backs OrderStore with the pkg/mongo collections.
type MongoOrderStore struct{}

func (MongoOrderStore) InsertOrder(ctx context.Context, order *models.Order) (bson.ObjectID, error) {
	return mongo.InsertOrder(ctx, order)
}

func (MongoOrderStore) ListOrdersByUser(ctx context.Context, uid string) ([]models.Order, error) {
	return mongo.ListOrdersByUser(ctx, uid)
}

func (MongoOrderStore) GetOrderForUser(ctx context.Context, id bson.ObjectID, uid string) (*models.Order, error) {
	return mongo.GetOrderForUser(ctx, id, uid)
}

func (MongoOrderStore) TransitionOrder(ctx context.Context, id bson.ObjectID, uid, target string) (bool, error) {
	return mongo.TransitionOrder(ctx, id, uid, target)
}

func (MongoOrderStore) ClearCart(ctx context.Context, uid string) error {
	return mongo.ClearCart(ctx, uid)
}
