package agentRepo

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

// MongoAgentRepo implements AgentRepository using MongoDB.
type MongoAgentRepo struct {
	coll *mongo.Collection
}

// NewMongoAgentRepo creates a new AgentRepository backed by MongoDB.
func NewMongoAgentRepo() AgentRepository {
	return &MongoAgentRepo{coll: database.Collection("agents")}
}

func (r *MongoAgentRepo) Create(ctx context.Context, agent *models.Agent) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(cctx, agent); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Reason: fmt.Sprintf("agent with email %s already exists", agent.Email)}
		}
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

func (r *MongoAgentRepo) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var agent models.Agent
	if err := r.coll.FindOne(cctx, bson.M{"id": id}).Decode(&agent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "agent", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch agent %s: %w", id, err)
	}
	return &agent, nil
}

func (r *MongoAgentRepo) GetByEmail(ctx context.Context, email string) (*models.Agent, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var agent models.Agent
	if err := r.coll.FindOne(cctx, bson.M{"email": email}).Decode(&agent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "agent"}
		}
		return nil, fmt.Errorf("failed to fetch agent by email: %w", err)
	}
	return &agent, nil
}

func (r *MongoAgentRepo) list(ctx context.Context, filter bson.M) ([]models.Agent, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(cctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer cursor.Close(cctx)

	var agents []models.Agent
	if err := cursor.All(cctx, &agents); err != nil {
		return nil, fmt.Errorf("failed to decode agents: %w", err)
	}
	return agents, nil
}

func (r *MongoAgentRepo) ListByOrganization(ctx context.Context, orgID string) ([]models.Agent, error) {
	return r.list(ctx, bson.M{"organizationId": orgID})
}

func (r *MongoAgentRepo) ListAvailable(ctx context.Context, orgID string) ([]models.Agent, error) {
	return r.list(ctx, bson.M{"organizationId": orgID, "status": models.AgentStatusFree})
}

func (r *MongoAgentRepo) SetStatus(ctx context.Context, id, status string) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(cctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set status for agent %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "agent", ID: id}
	}
	return nil
}

func (r *MongoAgentRepo) Delete(ctx context.Context, id string) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(cctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete agent %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "agent", ID: id}
	}
	return nil
}
