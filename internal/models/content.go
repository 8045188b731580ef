package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a blog article stored in MongoDB.
type Post struct {
	ID          primitive.ObjectID `json:"id"          bson:"_id,omitempty"`
	Slug        string             `json:"slug"        bson:"slug"`
	Title       string             `json:"title"       bson:"title"`
	Excerpt     string             `json:"excerpt"     bson:"excerpt"`
	Body        string             `json:"body,omitempty" bson:"body"`
	Author      string             `json:"author"      bson:"author"`
	PublishedAt time.Time          `json:"publishedAt" bson:"published_at"`
}

// ContactMessage is a contact-form submission stored in MongoDB.
type ContactMessage struct {
	ID         primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	Name       string             `json:"name"       bson:"name"`
	Email      string             `json:"email"      bson:"email"`
	Subject    string             `json:"subject"    bson:"subject"`
	Body       string             `json:"message"    bson:"body"`
	ReceivedAt time.Time          `json:"receivedAt" bson:"received_at"`
}

// ContactRequest is the JSON body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}
