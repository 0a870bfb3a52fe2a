package mongo

import (
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"storefront-api/pkg/global"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
)

// GetMongoClient returns the process-wide client, dialing on first use. The
// driver pools connections internally, so one client serves all requests.
func GetMongoClient() *mongo.Client {
	clientOnce.Do(func() {
		serverAPI := options.ServerAPI(options.ServerAPIVersion1)
		clientOptions := options.Client().ApplyURI(global.GetMongoURI()).SetServerAPIOptions(serverAPI)

		c, err := mongo.Connect(clientOptions)
		if err != nil {
			log.Fatalf("Failed to create MongoDB client: %v", err)
		}
		client = c
	})
	return client
}

func GetDatabase() *mongo.Database {
	return GetMongoClient().Database(global.GetDatabaseName())
}

func GetCollection(collectionName string) *mongo.Collection {
	return GetDatabase().Collection(collectionName)
}

func InitMongoDB() {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	if err := GetMongoClient().Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB successfully")
}
