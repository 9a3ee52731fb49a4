package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/comments-api/internal/models"
	"github.com/comments-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockCommentRepository is an in-memory implementation of CommentRepository.
// It mirrors the store-level semantics of the MongoDB implementation:
// duplicate ids are rejected, update/delete filter on id AND email, and
// delete-path store errors are swallowed.
type MockCommentRepository struct {
	Comments map[string]*models.Comment

	InsertError     error
	UpdateError     error
	DeleteError     error
	AggregateError  error
	GetCalls        int
	InsertCalls     int
	UpdateCalls     int
	DeleteCalls     int
	SwallowedErrors int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	m.GetCalls++
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}
	return m.Comments[id], nil
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	m.InsertCalls++
	if comment.ID.IsZero() {
		return nil, &repository.InvalidOperationError{Reason: "wrong comment id"}
	}
	if m.InsertError != nil {
		return nil, &repository.InvalidOperationError{Reason: m.InsertError.Error()}
	}
	key := comment.ID.Hex()
	if _, exists := m.Comments[key]; exists {
		return nil, &repository.InvalidOperationError{Reason: "duplicate key error"}
	}
	m.Comments[key] = comment
	return comment, nil
}

func (m *MockCommentRepository) UpdateComment(ctx context.Context, commentID, text, email string) (bool, error) {
	m.UpdateCalls++
	if _, err := primitive.ObjectIDFromHex(commentID); err != nil {
		return false, &repository.InvalidOperationError{Reason: "wrong comment id"}
	}
	if m.UpdateError != nil {
		return false, &repository.InvalidOperationError{Reason: m.UpdateError.Error()}
	}
	comment, exists := m.Comments[commentID]
	if !exists || comment.Email != email {
		return false, nil
	}
	comment.Text = text
	comment.Date = time.Now().UTC()
	return true, nil
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID, email string) (bool, error) {
	m.DeleteCalls++
	if _, err := primitive.ObjectIDFromHex(commentID); err != nil {
		return false, repository.ErrInvalidCommentID
	}
	if m.DeleteError != nil {
		// Store failures on the delete path are swallowed, matching the
		// MongoDB implementation.
		m.SwallowedErrors++
		return false, nil
	}
	comment, exists := m.Comments[commentID]
	if !exists || comment.Email != email {
		return false, nil
	}
	delete(m.Comments, commentID)
	return true, nil
}

func (m *MockCommentRepository) MostActiveCommenters(ctx context.Context) ([]models.Critic, error) {
	if m.AggregateError != nil {
		return nil, m.AggregateError
	}

	counts := make(map[string]int64)
	for _, comment := range m.Comments {
		counts[comment.Email]++
	}

	critics := make([]models.Critic, 0, len(counts))
	for email, count := range counts {
		critics = append(critics, models.Critic{Email: email, Count: count})
	}

	sort.Slice(critics, func(i, j int) bool {
		if critics[i].Count != critics[j].Count {
			return critics[i].Count > critics[j].Count
		}
		return critics[i].Email < critics[j].Email
	})

	if len(critics) > 20 {
		critics = critics[:20]
	}
	return critics, nil
}

func (m *MockCommentRepository) ListByEmail(ctx context.Context, email string, limit int64) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range m.Comments {
		if comment.Email == email {
			comments = append(comments, *comment)
		}
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].Date.After(comments[j].Date)
	})

	if limit > 0 && int64(len(comments)) > limit {
		comments = comments[:limit]
	}
	return comments, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Comments)), nil
}
