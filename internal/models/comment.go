package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a single comment document in the comments collection
type Comment struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Email string             `json:"email" bson:"email"`
	Text  string             `json:"text" bson:"text"`
	Date  time.Time          `json:"date" bson:"date"`
}

// CreateCommentRequest is the body of POST /v1/comments
type CreateCommentRequest struct {
	Email string `json:"email"`
	Text  string `json:"text"`
}

// UpdateCommentRequest is the body of PUT /v1/comments/:id
type UpdateCommentRequest struct {
	Email string `json:"email"`
	Text  string `json:"text"`
}

// MaxCommentLength is the maximum allowed length of a comment text in bytes
const MaxCommentLength = 5000
