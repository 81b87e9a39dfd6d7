package models

import "time"

// Review is one client's rating of one (organization, service) pair.
// At most one review may exist per (client, organization, service).
type Review struct {
	ID             string    `bson:"id" json:"id"`
	OrganizationID string    `bson:"organizationId" json:"organizationId"`
	ClientID       string    `bson:"clientId" json:"clientId"`
	ServiceID      string    `bson:"serviceId" json:"serviceId"`
	Rating         int       `bson:"rating" json:"rating"` // 1..5
	Comment        string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReviewPage is a paginated slice of an organization's reviews.
type ReviewPage struct {
	Reviews    []Review `json:"reviews"`
	Page       int      `json:"currentPage"`
	TotalPages int      `json:"totalPages"`
	Total      int64    `json:"totalReviews"`
}
