package models

import "time"

// Agent statuses. BUSY is held exactly while the agent is bound to a
// booking that has not reached COMPLETED or CANCELLED.
const (
	AgentStatusFree    = "FREE"
	AgentStatusBusy    = "BUSY"
	AgentStatusOffline = "OFFLINE"
)

// Agent is a field worker owned by exactly one organization.
type Agent struct {
	ID             string   `bson:"id" json:"id"`
	OrganizationID string   `bson:"organizationId" json:"organizationId"`
	Name           string   `bson:"name" json:"name"`
	Email          string   `bson:"email" json:"email"`
	Phone          string   `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash   string   `bson:"passwordHash" json:"-"`
	Status         string   `bson:"status" json:"status"`
	Rating         float64  `bson:"rating" json:"rating"`
	Location       GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	Address        string   `bson:"address,omitempty" json:"address,omitempty"`

	// Services lists the capability links (service IDs the agent can fulfil).
	Services []string `bson:"services,omitempty" json:"services,omitempty"`

	// CurrentBookingID drives the BUSY state. At most one active booking
	// per agent; cleared when that booking completes or is cancelled.
	CurrentBookingID    string   `bson:"currentBookingId,omitempty" json:"currentBookingId,omitempty"`
	CompletedBookingIDs []string `bson:"completedBookingIds,omitempty" json:"completedBookingIds,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AgentDashboard buckets an agent's bookings by lifecycle stage.
type AgentDashboard struct {
	Stats struct {
		Total      int `json:"total"`
		Pending    int `json:"pending"`
		InProgress int `json:"inProgress"`
		Completed  int `json:"completed"`
	} `json:"stats"`
	Pending    []Booking `json:"pending"`
	InProgress []Booking `json:"inProgress"`
	Completed  []Booking `json:"completed"`
}
