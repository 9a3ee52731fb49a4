package mocks

import (
	"context"
	"time"

	"github.com/comments-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockCommentService is a mock implementation of CommentService backed by an
// in-memory repository, for handler tests.
type MockCommentService struct {
	Repo        *MockCommentRepository
	CreateError error
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{
		Repo: NewMockCommentRepository(),
	}
}

func (m *MockCommentService) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	return m.Repo.GetComment(ctx, id)
}

func (m *MockCommentService) CreateComment(ctx context.Context, email, text string) (*models.Comment, error) {
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	comment := &models.Comment{
		ID:    primitive.NewObjectID(),
		Email: email,
		Text:  text,
		Date:  time.Now().UTC(),
	}
	return m.Repo.AddComment(ctx, comment)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID, text, email string) (bool, error) {
	return m.Repo.UpdateComment(ctx, commentID, text, email)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID, email string) (bool, error) {
	return m.Repo.DeleteComment(ctx, commentID, email)
}

func (m *MockCommentService) MostActiveCommenters(ctx context.Context) ([]models.Critic, error) {
	return m.Repo.MostActiveCommenters(ctx)
}

func (m *MockCommentService) ListByEmail(ctx context.Context, email string, limit int64) ([]models.Comment, error) {
	return m.Repo.ListByEmail(ctx, email, limit)
}

func (m *MockCommentService) Count(ctx context.Context) (int64, error) {
	return m.Repo.Count(ctx)
}
