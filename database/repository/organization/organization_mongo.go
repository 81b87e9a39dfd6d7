package orgRepo

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

// MongoOrgRepo implements OrganizationRepository using MongoDB.
type MongoOrgRepo struct {
	coll *mongo.Collection
}

// NewMongoOrgRepo creates a new OrganizationRepository backed by MongoDB.
func NewMongoOrgRepo() OrganizationRepository {
	return &MongoOrgRepo{coll: database.Collection("organizations")}
}

func (r *MongoOrgRepo) Create(ctx context.Context, org *models.Organization) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(cctx, org); err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

func (r *MongoOrgRepo) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var org models.Organization
	if err := r.coll.FindOne(cctx, bson.M{"id": id}).Decode(&org); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "organization", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch organization %s: %w", id, err)
	}
	return &org, nil
}

func (r *MongoOrgRepo) GetByEmail(ctx context.Context, email string) (*models.Organization, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var org models.Organization
	if err := r.coll.FindOne(cctx, bson.M{"email": email}).Decode(&org); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "organization"}
		}
		return nil, fmt.Errorf("failed to fetch organization by email: %w", err)
	}
	return &org, nil
}

func (r *MongoOrgRepo) Update(ctx context.Context, org *models.Organization) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	org.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(cctx, bson.M{"id": org.ID}, bson.M{"$set": org})
	if err != nil {
		return fmt.Errorf("failed to update organization %s: %w", org.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "organization", ID: org.ID}
	}
	return nil
}

func (r *MongoOrgRepo) addToSet(ctx context.Context, orgID, field, value string) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(cctx, bson.M{"id": orgID}, bson.M{"$addToSet": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("failed to update organization %s: %w", orgID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "organization", ID: orgID}
	}
	return nil
}

func (r *MongoOrgRepo) AddAgent(ctx context.Context, orgID, agentID string) error {
	return r.addToSet(ctx, orgID, "agentIds", agentID)
}

func (r *MongoOrgRepo) RemoveAgent(ctx context.Context, orgID, agentID string) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(cctx, bson.M{"id": orgID}, bson.M{"$pull": bson.M{"agentIds": agentID}})
	if err != nil {
		return fmt.Errorf("failed to remove agent from organization %s: %w", orgID, err)
	}
	return nil
}

func (r *MongoOrgRepo) AddService(ctx context.Context, orgID, serviceID string) error {
	return r.addToSet(ctx, orgID, "serviceIds", serviceID)
}
