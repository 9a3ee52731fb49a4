package service

import (
	"context"
	"time"

	"github.com/comments-api/internal/models"
	"github.com/comments-api/internal/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// defaultListLimit bounds the author listing when the caller gives no limit
const defaultListLimit = 50

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo repository.CommentRepository
	log  zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repo repository.CommentRepository, log zerolog.Logger) *commentService {
	return &commentService{
		repo: repo,
		log:  log.With().Str("service", "comment").Logger(),
	}
}

// GetComment retrieves a single comment by id
func (s *commentService) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	return s.repo.GetComment(ctx, id)
}

// CreateComment assigns a fresh object id and timestamp and stores the comment
func (s *commentService) CreateComment(ctx context.Context, email, text string) (*models.Comment, error) {
	comment := &models.Comment{
		ID:    primitive.NewObjectID(),
		Email: email,
		Text:  text,
		Date:  time.Now().UTC(),
	}

	stored, err := s.repo.AddComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("comment_id", stored.ID.Hex()).
		Str("email", stored.Email).
		Msg("Comment created")

	return stored, nil
}

// UpdateComment edits a comment's text; only the owning email may edit
func (s *commentService) UpdateComment(ctx context.Context, commentID, text, email string) (bool, error) {
	return s.repo.UpdateComment(ctx, commentID, text, email)
}

// DeleteComment removes a comment; only the owning email may delete
func (s *commentService) DeleteComment(ctx context.Context, commentID, email string) (bool, error) {
	return s.repo.DeleteComment(ctx, commentID, email)
}

// MostActiveCommenters returns the top 20 commenters ranked by comment count
func (s *commentService) MostActiveCommenters(ctx context.Context) ([]models.Critic, error) {
	return s.repo.MostActiveCommenters(ctx)
}

// ListByEmail returns the most recent comments by the given author
func (s *commentService) ListByEmail(ctx context.Context, email string, limit int64) ([]models.Comment, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return s.repo.ListByEmail(ctx, email, limit)
}

// Count returns the total number of comments
func (s *commentService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
