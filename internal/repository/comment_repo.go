package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comments-api/internal/database"
	"github.com/comments-api/internal/models"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
)

// CommentCollection is the name of the backing MongoDB collection
const CommentCollection = "comments"

// mostActiveLimit caps the critics report at the top 20 commenters
const mostActiveLimit = 20

// commentRepo is the concrete MongoDB implementation of CommentRepository
type commentRepo struct {
	coll *mongo.Collection
	// majority reads only majority-committed data; used by the critics report
	majority *mongo.Collection
	log      zerolog.Logger
}

// NewCommentRepo creates a new comment repository over the comments collection
func NewCommentRepo(db *database.DB, log zerolog.Logger) (CommentRepository, error) {
	coll := db.Collection(CommentCollection)

	majority, err := coll.Clone(options.Collection().SetReadConcern(readconcern.Majority()))
	if err != nil {
		return nil, fmt.Errorf("failed to clone collection with majority read concern: %w", err)
	}

	return &commentRepo{
		coll:     coll,
		majority: majority,
		log:      log.With().Str("repository", "comment").Logger(),
	}, nil
}

// GetComment retrieves a comment by its hex id. An absent or malformed id
// yields nil without error; the read path performs no format validation.
func (r *commentRepo) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var comment models.Comment
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// AddComment inserts a new comment. The id must be assigned before the call;
// an unset id or any insert failure (duplicate id included) is reported as an
// InvalidOperationError carrying the underlying message.
func (r *commentRepo) AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if comment.ID.IsZero() {
		return nil, &InvalidOperationError{Reason: "wrong comment id"}
	}

	if _, err := r.coll.InsertOne(ctx, comment); err != nil {
		return nil, &InvalidOperationError{Reason: err.Error()}
	}

	return comment, nil
}

// UpdateComment sets the text and a fresh date on the comment matching both
// commentID and email. The email match is the ownership check: a user may only
// edit their own comment. Returns true when a document was modified.
func (r *commentRepo) UpdateComment(ctx context.Context, commentID, text, email string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return false, &InvalidOperationError{Reason: "wrong comment id"}
	}

	filter := bson.M{"_id": oid, "email": email}
	update := bson.M{"$set": bson.M{"text": text, "date": time.Now().UTC()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, &InvalidOperationError{Reason: err.Error()}
	}

	return result.ModifiedCount > 0, nil
}

// DeleteComment removes the comment matching both commentID and email. A
// malformed id fails with ErrInvalidCommentID before the store is touched.
// Store failures are logged and reported as "nothing deleted", not as errors.
func (r *commentRepo) DeleteComment(ctx context.Context, commentID, email string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return false, ErrInvalidCommentID
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "email": email})
	if err != nil {
		r.log.Error().Err(err).Str("comment_id", commentID).Msg("Failed to delete comment")
		return false, nil
	}

	return result.DeletedCount > 0, nil
}

// MostActiveCommenters groups the whole collection by author email, counts per
// group, and returns the top 20 by count. Reads at majority read concern so the
// report reflects only majority-committed comments.
func (r *commentRepo) MostActiveCommenters(ctx context.Context) ([]models.Critic, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$email"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: mostActiveLimit}},
	}

	cursor, err := r.majority.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var critics []models.Critic
	if err := cursor.All(ctx, &critics); err != nil {
		return nil, err
	}

	return critics, nil
}

// ListByEmail returns the most recent comments by the given author, newest first
func (r *commentRepo) ListByEmail(ctx context.Context, email string, limit int64) ([]models.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
