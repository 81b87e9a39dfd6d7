package models

import "time"

// Service is a sellable capability offered by an organization.
type Service struct {
	ID             string   `bson:"id" json:"id"`
	OrganizationID string   `bson:"organizationId" json:"organizationId"`
	Name           string   `bson:"name" json:"name"`
	Description    string   `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice      float64  `bson:"basePrice" json:"basePrice"`
	Category       string   `bson:"category" json:"category"`
	Tags           []string `bson:"tags,omitempty" json:"tags,omitempty"`
	Images         []string `bson:"images,omitempty" json:"images,omitempty"`
	Location       GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	Active         bool     `bson:"active" json:"active"`

	// Embedding is the semantic vector over name/description/category/tags.
	// It is refreshed by the write path whenever one of those fields is
	// dirty, never by an implicit persistence hook.
	Embedding []float32 `bson:"embedding,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EmbeddingText is the canonical text the service embedding is derived from.
func (s *Service) EmbeddingText() string {
	text := s.Name + " " + s.Description + " " + s.Category
	for _, tag := range s.Tags {
		text += " " + tag
	}
	return text
}
