package service

import (
	"context"

	"github.com/comments-api/internal/models"
	"github.com/comments-api/internal/repository"
	"github.com/rs/zerolog"
)

// CommentService defines the interface for comment operations
type CommentService interface {
	GetComment(ctx context.Context, id string) (*models.Comment, error)
	CreateComment(ctx context.Context, email, text string) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID, text, email string) (bool, error)
	DeleteComment(ctx context.Context, commentID, email string) (bool, error)
	MostActiveCommenters(ctx context.Context) ([]models.Critic, error)
	ListByEmail(ctx context.Context, email string, limit int64) ([]models.Comment, error)
	Count(ctx context.Context) (int64, error)
}

// Services holds all service interfaces
type Services struct {
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Comment: newCommentService(repos.Comment, log),
	}
}
