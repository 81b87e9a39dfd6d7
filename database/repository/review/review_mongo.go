package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fieldserve/database"
	"fieldserve/models"
	"fieldserve/utils"
)

// MongoReviewRepo implements ReviewRepository using MongoDB sessions for
// the transactional flows.
type MongoReviewRepo struct {
	reviewColl *mongo.Collection
	orgColl    *mongo.Collection
}

// NewMongoReviewRepo creates a new ReviewRepository backed by MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &MongoReviewRepo{
		reviewColl: database.Collection("reviews"),
		orgColl:    database.Collection("organizations"),
	}
}

// mongoReviewTx carries the session context for one unit of work.
type mongoReviewTx struct {
	sc   mongo.SessionContext
	repo *MongoReviewRepo
}

func (t *mongoReviewTx) FindByTriple(clientID, orgID, serviceID string) (*models.Review, error) {
	filter := bson.M{"clientId": clientID, "organizationId": orgID, "serviceId": serviceID}
	var review models.Review
	if err := t.repo.reviewColl.FindOne(t.sc, filter).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up review: %w", err)
	}
	return &review, nil
}

func (t *mongoReviewTx) GetForClient(reviewID, clientID string) (*models.Review, error) {
	var review models.Review
	filter := bson.M{"id": reviewID, "clientId": clientID}
	if err := t.repo.reviewColl.FindOne(t.sc, filter).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "review", ID: reviewID}
		}
		return nil, fmt.Errorf("failed to fetch review %s: %w", reviewID, err)
	}
	return &review, nil
}

func (t *mongoReviewTx) Insert(review *models.Review) error {
	if _, err := t.repo.reviewColl.InsertOne(t.sc, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Reason: "you have already reviewed this service"}
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (t *mongoReviewTx) Update(review *models.Review) error {
	review.UpdatedAt = time.Now()
	res, err := t.repo.reviewColl.UpdateOne(t.sc, bson.M{"id": review.ID}, bson.M{"$set": review})
	if err != nil {
		return fmt.Errorf("failed to update review %s: %w", review.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "review", ID: review.ID}
	}
	return nil
}

func (t *mongoReviewTx) Delete(reviewID string) error {
	res, err := t.repo.reviewColl.DeleteOne(t.sc, bson.M{"id": reviewID})
	if err != nil {
		return fmt.Errorf("failed to delete review %s: %w", reviewID, err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "review", ID: reviewID}
	}
	return nil
}

func (t *mongoReviewTx) ListByOrganization(orgID string) ([]models.Review, error) {
	cursor, err := t.repo.reviewColl.Find(t.sc, bson.M{"organizationId": orgID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for organization %s: %w", orgID, err)
	}
	defer cursor.Close(t.sc)

	var reviews []models.Review
	if err := cursor.All(t.sc, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

func (t *mongoReviewTx) SetOrganizationRating(orgID string, rating float64, count int) error {
	update := bson.M{"$set": bson.M{"rating": rating, "reviewCount": count, "updatedAt": time.Now()}}
	res, err := t.repo.orgColl.UpdateOne(t.sc, bson.M{"id": orgID}, update)
	if err != nil {
		return fmt.Errorf("failed to store rating for organization %s: %w", orgID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "organization", ID: orgID}
	}
	return nil
}

// RunInTransaction executes fn inside a mongo session so the review write
// and the aggregate recomputation commit or abort together.
func (r *MongoReviewRepo) RunInTransaction(ctx context.Context, fn func(tx ReviewTx) error) error {
	sess, err := r.reviewColl.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var domainErr error
	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(&mongoReviewTx{sc: sc, repo: r}); err != nil {
			_ = sc.AbortTransaction(sc)
			domainErr = err
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("review transaction failed: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) ListByOrganizationPaged(ctx context.Context, orgID string, page, limit int) (*models.ReviewPage, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	filter := bson.M{"organizationId": orgID}

	total, err := r.reviewColl.CountDocuments(cctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := r.reviewColl.Find(cctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(cctx)

	var reviews []models.Review
	if err := cursor.All(cctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &models.ReviewPage{
		Reviews:    reviews,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}
