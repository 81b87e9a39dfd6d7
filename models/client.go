package models

import "time"

// Client is a customer account that books services.
type Client struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Caller roles carried in auth tokens.
const (
	RoleClient   = "CLIENT"
	RoleAgent    = "AGENT"
	RoleProvider = "PROVIDER"
)
