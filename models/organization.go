package models

import "time"

// Organization is the business entity owning services and agents,
// controlled by one provider account.
type Organization struct {
	ID          string `bson:"id" json:"id"`
	OwnerID     string `bson:"ownerId" json:"ownerId"` // provider account
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	// PasswordHash authenticates the provider sign-in for this organization.
	PasswordHash string   `bson:"passwordHash,omitempty" json:"-"`
	Phone        string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string   `bson:"address,omitempty" json:"address,omitempty"`
	Website      string   `bson:"website,omitempty" json:"website,omitempty"`
	Logo         string   `bson:"logo,omitempty" json:"logo,omitempty"`
	Images       []string `bson:"images,omitempty" json:"images,omitempty"`
	Location     GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	Categories   []string `bson:"categories,omitempty" json:"categories,omitempty"`

	ServiceIDs []string `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	AgentIDs   []string `bson:"agentIds,omitempty" json:"agentIds,omitempty"`

	// ClientIDs is the roster of clients the organization has served.
	// Set semantics: membership is added idempotently on assignment.
	ClientIDs []string `bson:"clientIds,omitempty" json:"clientIds,omitempty"`

	// Rating and ReviewCount are derived from the live review set and are
	// rewritten inside the same transaction as every review mutation.
	Rating      float64 `bson:"rating" json:"rating"`
	ReviewCount int     `bson:"reviewCount" json:"reviewCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
