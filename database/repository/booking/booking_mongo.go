package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB. It holds
// handles to the agent and organization collections as well, because the
// assignment and release units of work mutate all three.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	agentColl   *mongo.Collection
	orgColl     *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{
		bookingColl: database.Collection("bookings"),
		agentColl:   database.Collection("agents"),
		orgColl:     database.Collection("organizations"),
	}
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.bookingColl.InsertOne(cctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(cctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "booking", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) GetForAgent(ctx context.Context, id, agentID string) (*models.Booking, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": id, "agentId": agentID}
	if err := r.bookingColl.FindOne(cctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "booking", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch booking %s for agent %s: %w", id, agentID, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.bookingColl.Find(cctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(cctx)

	var bookings []models.Booking
	if err := cursor.All(cctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"clientId": clientID})
}

func (r *MongoBookingRepo) ListByOrganization(ctx context.Context, orgID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"organizationId": orgID})
}

func (r *MongoBookingRepo) ListByAgent(ctx context.Context, agentID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"agentId": agentID})
}

// updateVersioned writes the booking conditioned on the version the caller
// read. The stored version advances by one on success.
func updateVersioned(ctx context.Context, coll *mongo.Collection, booking *models.Booking) error {
	booking.UpdatedAt = time.Now()

	filter := bson.M{"id": booking.ID, "version": booking.Version}
	update := bson.M{
		"$set": bson.M{
			"agentId":       booking.AgentID,
			"status":        booking.Status,
			"totalPrice":    booking.TotalPrice,
			"paymentStatus": booking.PaymentStatus,
			"extraTasks":    booking.ExtraTasks,
			"updatedAt":     booking.UpdatedAt,
		},
		"$inc": bson.M{"version": 1},
	}
	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", booking.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.ConflictError{Reason: fmt.Sprintf("booking %s was modified concurrently", booking.ID)}
	}
	booking.Version++
	return nil
}

func (r *MongoBookingRepo) UpdateVersioned(ctx context.Context, booking *models.Booking) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return updateVersioned(cctx, r.bookingColl, booking)
}

// AssignAgent claims the agent and binds it to the booking transactionally.
func (r *MongoBookingRepo) AssignAgent(ctx context.Context, booking *models.Booking, agent *models.Agent) error {
	sess, err := r.bookingColl.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		// Conditional claim: only a FREE agent of this organization can be
		// bound. A concurrent assignment loses here.
		claim := bson.M{
			"id":             agent.ID,
			"organizationId": booking.OrganizationID,
			"status":         models.AgentStatusFree,
		}
		res, err := r.agentColl.UpdateOne(sc, claim, bson.M{
			"$set": bson.M{
				"status":           models.AgentStatusBusy,
				"currentBookingId": booking.ID,
				"updatedAt":        time.Now(),
			},
		})
		if err != nil {
			return fmt.Errorf("failed to claim agent %s: %w", agent.ID, err)
		}
		if res.MatchedCount == 0 {
			return utils.ConflictError{Reason: fmt.Sprintf("agent %s is not available", agent.ID)}
		}

		if err := updateVersioned(sc, r.bookingColl, booking); err != nil {
			return err
		}

		// Idempotent roster membership.
		if _, err := r.orgColl.UpdateOne(sc,
			bson.M{"id": booking.OrganizationID},
			bson.M{"$addToSet": bson.M{"clientIds": booking.ClientID}},
		); err != nil {
			return fmt.Errorf("failed to add client to organization roster: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		var conflict utils.ConflictError
		if errors.As(err, &conflict) {
			return conflict
		}
		return fmt.Errorf("assignment transaction failed: %w", err)
	}
	return nil
}

// UpdateVersionedReleasingAgent persists the booking and frees its agent in
// one transaction, so no caller can observe an agent left BUSY after its
// sole active booking reached a terminal state.
func (r *MongoBookingRepo) UpdateVersionedReleasingAgent(ctx context.Context, booking *models.Booking, agentID string, completed bool) error {
	sess, err := r.bookingColl.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if err := updateVersioned(sc, r.bookingColl, booking); err != nil {
			return err
		}

		release := bson.M{
			"$set": bson.M{
				"status":           models.AgentStatusFree,
				"currentBookingId": "",
				"updatedAt":        time.Now(),
			},
		}
		if completed {
			release["$addToSet"] = bson.M{"completedBookingIds": booking.ID}
		}
		if _, err := r.agentColl.UpdateOne(sc, bson.M{"id": agentID, "currentBookingId": booking.ID}, release); err != nil {
			return fmt.Errorf("failed to release agent %s: %w", agentID, err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		var conflict utils.ConflictError
		if errors.As(err, &conflict) {
			return conflict
		}
		return fmt.Errorf("release transaction failed: %w", err)
	}
	return nil
}
