package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lockin90/lockin-backend/internal/challenge"
	"github.com/lockin90/lockin-backend/internal/database"
	"github.com/lockin90/lockin-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindUserByID loads a user record by its stable id.
func FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := database.DB.Collection("users").FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertBrokerUser creates the user on first sight of a broker identity, or
// refreshes name/picture on a returning one. The challenge start date is
// anchored to the creation day and never touched again.
func UpsertBrokerUser(ctx context.Context, identity *BrokerIdentity) (*models.User, error) {
	users := database.DB.Collection("users")

	var existing models.User
	err := users.FindOne(ctx, bson.M{"email": identity.Email}).Decode(&existing)
	if err == nil {
		now := time.Now().UTC()
		_, err = users.UpdateOne(ctx, bson.M{"id": existing.ID}, bson.M{"$set": bson.M{
			"name":       identity.Name,
			"picture":    identity.Picture,
			"updated_at": now,
		}})
		if err != nil {
			return nil, err
		}
		existing.Name = identity.Name
		existing.Picture = identity.Picture
		existing.UpdatedAt = now
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:                 uuid.NewString(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Email:              identity.Email,
		Name:               identity.Name,
		Picture:            identity.Picture,
		ChallengeStartDate: challenge.Day(now),
	}
	if _, err := users.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}
