package repository

import (
	"context"

	"github.com/comments-api/internal/database"
	"github.com/comments-api/internal/models"
	"github.com/rs/zerolog"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	GetComment(ctx context.Context, id string) (*models.Comment, error)
	AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID, text, email string) (bool, error)
	DeleteComment(ctx context.Context, commentID, email string) (bool, error)
	MostActiveCommenters(ctx context.Context) ([]models.Critic, error)
	ListByEmail(ctx context.Context, email string, limit int64) ([]models.Comment, error)
	Count(ctx context.Context) (int64, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB, log zerolog.Logger) (*Repositories, error) {
	commentRepo, err := NewCommentRepo(db, log)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		Comment: commentRepo,
	}, nil
}
