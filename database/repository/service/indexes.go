package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fieldserve/database"
)

// EnsureIndexes creates the indexes the search pipeline and the review
// uniqueness invariant depend on.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serviceGeoIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	}
	serviceCategoryIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "active", Value: 1}},
	}
	if _, err := database.Collection("services").Indexes().CreateMany(ctx, []mongo.IndexModel{serviceGeoIdx, serviceCategoryIdx}); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	// One review per (client, organization, service).
	reviewTripleIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "organizationId", Value: 1},
			{Key: "serviceId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := database.Collection("reviews").Indexes().CreateOne(ctx, reviewTripleIdx); err != nil {
		return fmt.Errorf("failed to create review index: %w", err)
	}

	agentEmailIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := database.Collection("agents").Indexes().CreateOne(ctx, agentEmailIdx); err != nil {
		return fmt.Errorf("failed to create agent index: %w", err)
	}

	clientEmailIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := database.Collection("clients").Indexes().CreateOne(ctx, clientEmailIdx); err != nil {
		return fmt.Errorf("failed to create client index: %w", err)
	}

	orgEmailIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}
	if _, err := database.Collection("organizations").Indexes().CreateOne(ctx, orgEmailIdx); err != nil {
		return fmt.Errorf("failed to create organization index: %w", err)
	}

	bookingIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "status", Value: 1}},
	}
	agentBookingIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "agentId", Value: 1}, {Key: "status", Value: 1}},
	}
	if _, err := database.Collection("bookings").Indexes().CreateMany(ctx, []mongo.IndexModel{bookingIdx, agentBookingIdx}); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	return nil
}
