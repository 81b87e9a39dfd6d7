package models

import "time"

// Booking statuses. ASSIGNED is only ever entered through agent assignment,
// never through the generic status-update path.
const (
	BookingStatusPending    = "PENDING"
	BookingStatusAssigned   = "ASSIGNED"
	BookingStatusInProgress = "IN_PROGRESS"
	BookingStatusCompleted  = "COMPLETED"
	BookingStatusCancelled  = "CANCELLED"
)

// Payment statuses.
const (
	PaymentStatusPaid   = "PAID"
	PaymentStatusUnpaid = "UNPAID"
)

// ExtraTask is an ad-hoc priced line item added to a booking after creation.
type ExtraTask struct {
	ID          string  `bson:"id" json:"id"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
}

// Booking represents one client's scheduled engagement of one service.
type Booking struct {
	ID             string      `bson:"id" json:"id"`
	ClientID       string      `bson:"clientId" json:"clientId"`
	OrganizationID string      `bson:"organizationId" json:"organizationId"`
	ServiceID      string      `bson:"serviceId" json:"serviceId"`
	AgentID        string      `bson:"agentId,omitempty" json:"agentId,omitempty"`
	Date           string      `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot       string      `bson:"timeSlot" json:"timeSlot"`
	Status         string      `bson:"status" json:"status"`
	TotalPrice     float64     `bson:"totalPrice" json:"totalPrice"`
	PaymentStatus  string      `bson:"paymentStatus" json:"paymentStatus"`
	ExtraTasks     []ExtraTask `bson:"extraTasks" json:"extraTasks"`
	Location       GeoPoint    `bson:"location,omitempty" json:"location,omitempty"`
	Address        string      `bson:"address,omitempty" json:"address,omitempty"`

	// Version is the optimistic concurrency token. Every persisted mutation
	// increments it; conditional updates filter on the value they read.
	Version int64 `bson:"version" json:"version"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Terminal reports whether the booking has reached a state that forbids
// further mutation.
func (b *Booking) Terminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// ExtraTotal sums the prices of all extra tasks.
func (b *Booking) ExtraTotal() float64 {
	var sum float64
	for _, t := range b.ExtraTasks {
		sum += t.Price
	}
	return sum
}

// BookingItemInput is one cart entry in a client checkout request.
type BookingItemInput struct {
	ServiceID  string      `json:"serviceId"`
	Date       string      `json:"bookingDate"`
	TimeSlot   string      `json:"bookingTime"`
	ExtraTasks []ExtraTask `json:"extraTasks,omitempty"`
	Location   GeoPoint    `json:"location,omitempty"`
	Address    string      `json:"address,omitempty"`
}

// AssignmentSummary is returned to the provider after a successful
// agent assignment.
type AssignmentSummary struct {
	BookingID  string `json:"bookingId"`
	AgentID    string `json:"agentId"`
	AgentName  string `json:"agentName"`
	AgentPhone string `json:"agentPhone"`
}
