package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"storefront-api/pkg/models"
)

// InsertOrder persists a new order snapshot and returns its generated id.
func InsertOrder(ctx context.Context, order *models.Order) (bson.ObjectID, error) {
	collection := GetCollection("orders")

	res, err := collection.InsertOne(ctx, order)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

// ListOrdersByUser returns all of a user's orders, newest first.
func ListOrdersByUser(ctx context.Context, uid string) ([]models.Order, error) {
	collection := GetCollection("orders")

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(ctx, bson.D{{Key: "userUid", Value: uid}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderForUser fetches one order scoped to its owner. The uid is part of
// the filter, so another user's order is indistinguishable from a missing
// one (mongo.ErrNoDocuments either way).
func GetOrderForUser(ctx context.Context, id bson.ObjectID, uid string) (*models.Order, error) {
	collection := GetCollection("orders")

	var order models.Order
	filter := bson.D{{Key: "_id", Value: id}, {Key: "userUid", Value: uid}}
	if err := collection.FindOne(ctx, filter).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// TransitionOrder moves an order from PENDING to target in a single
// conditional update. The PENDING guard in the filter is what makes a cancel
// racing a payment safe: whichever update matches first wins and the loser
// sees matched == false. CANCELLED additionally stamps cancelledAt.
func TransitionOrder(ctx context.Context, id bson.ObjectID, uid, target string) (bool, error) {
	collection := GetCollection("orders")

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "userUid", Value: uid},
		{Key: "status", Value: models.StatusPending},
	}

	set := bson.D{{Key: "status", Value: target}}
	if target == models.StatusCancelled {
		set = append(set, bson.E{Key: "cancelledAt", Value: time.Now().UTC()})
	}

	res, err := collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
