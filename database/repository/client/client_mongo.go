package clientRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fieldserve/database"
	"fieldserve/models"
	"fieldserve/utils"
)

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new ClientRepository backed by MongoDB.
func NewMongoClientRepo() ClientRepository {
	return &MongoClientRepo{coll: database.Collection("clients")}
}

func (r *MongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(cctx, client); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Reason: fmt.Sprintf("account with email %s already exists", client.Email)}
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *MongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(cctx, bson.M{"id": id}).Decode(&client); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "client", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch client %s: %w", id, err)
	}
	return &client, nil
}

func (r *MongoClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(cctx, bson.M{"email": email}).Decode(&client); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "client"}
		}
		return nil, fmt.Errorf("failed to fetch client by email: %w", err)
	}
	return &client, nil
}

func (r *MongoClientRepo) Update(ctx context.Context, client *models.Client) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(cctx, bson.M{"id": client.ID}, bson.M{"$set": client})
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", client.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "client", ID: client.ID}
	}
	return nil
}
