package database

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

func Connect(mongoURI string) error {
	// Use longer timeout for Atlas connections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	// Ping the database with a separate context
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return err
	}

	Client = client
	DB = client.Database(databaseName(mongoURI))

	log.Println("✅ Connected to MongoDB")
	return nil
}

// databaseName extracts the database name from the connection string,
// falling back to "lockin90".
func databaseName(mongoURI string) string {
	dbName := "lockin90"
	if mongoURI == "" {
		return dbName
	}
	parts := strings.Split(mongoURI, "/")
	if len(parts) > 3 {
		dbPart := strings.Split(parts[len(parts)-1], "?")[0]
		if dbPart != "" {
			dbName = dbPart
		}
	}
	return dbName
}

// EnsureIndexes configures the indexes the API relies on. Called on startup
// from main after Mongo has connected.
//
// The unique index on journal_entries(user_id, entry_date) is load-bearing:
// it is what serializes concurrent creates for the same day, so the one-entry-
// per-day invariant holds without application-level locking.
func EnsureIndexes(ctx context.Context) error {
	journalModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "entry_date", Value: 1},
			},
			Options: options.Index().SetName("idx_user_entry_date_unique").SetUnique(true),
		},
	}
	for _, m := range journalModels {
		if _, err := DB.Collection("journal_entries").Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}

	projectModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
			},
			Options: options.Index().SetName("idx_project_user"),
		},
		{
			Keys: bson.D{
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_project_created_desc"),
		},
	}
	for _, m := range projectModels {
		if _, err := DB.Collection("projects").Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}

	userModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("idx_user_id_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_user_email_unique").SetUnique(true),
		},
	}
	for _, m := range userModels {
		if _, err := DB.Collection("users").Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return Client.Disconnect(ctx)
}
