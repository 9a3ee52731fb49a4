package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/comments-api/internal/mocks"
	"github.com/comments-api/internal/models"
	"github.com/comments-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newComment(email, text string) *models.Comment {
	return &models.Comment{
		ID:    primitive.NewObjectID(),
		Email: email,
		Text:  text,
		Date:  time.Now().UTC(),
	}
}

func TestMockCommentRepository_GetComment_Absent(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	comment, err := repo.GetComment(ctx, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("GetComment failed: %v", err)
	}
	if comment != nil {
		t.Errorf("Expected nil for absent comment, got %+v", comment)
	}
}

func TestMockCommentRepository_GetComment_MalformedID(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	// The read path performs no format validation; garbage ids read as absent
	comment, err := repo.GetComment(ctx, "not-a-hex-id")
	if err != nil {
		t.Fatalf("GetComment failed: %v", err)
	}
	if comment != nil {
		t.Errorf("Expected nil for malformed id, got %+v", comment)
	}
}

func TestMockCommentRepository_AddAndGet(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	comment := newComment("a@b.com", "hi")
	stored, err := repo.AddComment(ctx, comment)
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if stored.ID != comment.ID {
		t.Errorf("Expected id %s, got %s", comment.ID.Hex(), stored.ID.Hex())
	}

	got, err := repo.GetComment(ctx, comment.ID.Hex())
	if err != nil {
		t.Fatalf("GetComment failed: %v", err)
	}
	if got == nil {
		t.Fatal("Comment not found after insert")
	}
	if got.Text != "hi" {
		t.Errorf("Expected text 'hi', got '%s'", got.Text)
	}
}

func TestMockCommentRepository_AddComment_UnsetID(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	_, err := repo.AddComment(ctx, &models.Comment{Email: "a@b.com", Text: "hi"})
	if err == nil {
		t.Fatal("Expected error for unset id")
	}
	if !repository.IsInvalidOperation(err) {
		t.Errorf("Expected InvalidOperationError, got %T: %v", err, err)
	}

	count, _ := repo.Count(ctx)
	if count != 0 {
		t.Errorf("Expected no write, store has %d comments", count)
	}
}

func TestMockCommentRepository_AddComment_DuplicateID(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	comment := newComment("a@b.com", "hi")
	if _, err := repo.AddComment(ctx, comment); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	dup := &models.Comment{ID: comment.ID, Email: "c@d.com", Text: "again"}
	_, err := repo.AddComment(ctx, dup)
	if err == nil {
		t.Fatal("Expected error for duplicate id")
	}
	if !repository.IsInvalidOperation(err) {
		t.Errorf("Expected InvalidOperationError, got %T: %v", err, err)
	}

	// Store unchanged
	got, _ := repo.GetComment(ctx, comment.ID.Hex())
	if got.Email != "a@b.com" {
		t.Errorf("Original comment was overwritten: %+v", got)
	}
	count, _ := repo.Count(ctx)
	if count != 1 {
		t.Errorf("Expected 1 comment, got %d", count)
	}
}

func TestMockCommentRepository_UpdateComment_Ownership(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	comment := newComment("a@b.com", "hi")
	repo.AddComment(ctx, comment)

	// Mismatched email must not touch the document
	updated, err := repo.UpdateComment(ctx, comment.ID.Hex(), "bye", "intruder@evil.com")
	if err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}
	if updated {
		t.Error("Update with mismatched email should report false")
	}

	got, _ := repo.GetComment(ctx, comment.ID.Hex())
	if got.Text != "hi" {
		t.Errorf("Document was modified by non-owner: text '%s'", got.Text)
	}

	// Owner update succeeds
	updated, err = repo.UpdateComment(ctx, comment.ID.Hex(), "bye", "a@b.com")
	if err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}
	if !updated {
		t.Error("Owner update should report true")
	}

	got, _ = repo.GetComment(ctx, comment.ID.Hex())
	if got.Text != "bye" {
		t.Errorf("Expected text 'bye', got '%s'", got.Text)
	}
}

func TestMockCommentRepository_InsertUpdateGet_KnownID(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	oid, err := primitive.ObjectIDFromHex("5a9427648b0beebeb69579cc")
	if err != nil {
		t.Fatalf("ObjectIDFromHex failed: %v", err)
	}

	if _, err := repo.AddComment(ctx, &models.Comment{ID: oid, Email: "a@b.com", Text: "hi"}); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	updated, err := repo.UpdateComment(ctx, "5a9427648b0beebeb69579cc", "bye", "a@b.com")
	if err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}
	if !updated {
		t.Fatal("Expected update to report true")
	}

	got, _ := repo.GetComment(ctx, "5a9427648b0beebeb69579cc")
	if got == nil || got.Text != "bye" {
		t.Errorf("Expected text 'bye' after update, got %+v", got)
	}
}

func TestMockCommentRepository_UpdateComment_MalformedID(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	_, err := repo.UpdateComment(ctx, "zzzz", "bye", "a@b.com")
	if err == nil {
		t.Fatal("Expected error for malformed id")
	}
	if !repository.IsInvalidOperation(err) {
		t.Errorf("Expected InvalidOperationError, got %T: %v", err, err)
	}
}

func TestMockCommentRepository_DeleteComment_Ownership(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	comment := newComment("a@b.com", "hi")
	repo.AddComment(ctx, comment)

	deleted, err := repo.DeleteComment(ctx, comment.ID.Hex(), "intruder@evil.com")
	if err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}
	if deleted {
		t.Error("Delete with mismatched email should report false")
	}

	deleted, err = repo.DeleteComment(ctx, comment.ID.Hex(), "a@b.com")
	if err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}
	if !deleted {
		t.Error("Owner delete should report true")
	}

	got, _ := repo.GetComment(ctx, comment.ID.Hex())
	if got != nil {
		t.Error("Comment still present after delete")
	}
}

func TestMockCommentRepository_DeleteComment_MalformedID(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	_, err := repo.DeleteComment(ctx, "short", "a@b.com")
	if !errors.Is(err, repository.ErrInvalidCommentID) {
		t.Errorf("Expected ErrInvalidCommentID, got %v", err)
	}
	if repo.SwallowedErrors != 0 {
		t.Error("Malformed id must fail before touching the store")
	}
}

func TestMockCommentRepository_DeleteComment_StoreErrorSwallowed(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	comment := newComment("a@b.com", "hi")
	repo.AddComment(ctx, comment)

	repo.DeleteError = errors.New("connection reset")
	deleted, err := repo.DeleteComment(ctx, comment.ID.Hex(), "a@b.com")
	if err != nil {
		t.Errorf("Store errors on delete must be swallowed, got %v", err)
	}
	if deleted {
		t.Error("Failed delete should report false")
	}
	if repo.SwallowedErrors != 1 {
		t.Errorf("Expected 1 swallowed error, got %d", repo.SwallowedErrors)
	}
}

func TestMockCommentRepository_MostActiveCommenters(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	// 25 distinct emails, email i gets i+1 comments
	for i := 0; i < 25; i++ {
		email := fmt.Sprintf("user%02d@test.com", i)
		for j := 0; j <= i; j++ {
			repo.AddComment(ctx, newComment(email, "text"))
		}
	}

	critics, err := repo.MostActiveCommenters(ctx)
	if err != nil {
		t.Fatalf("MostActiveCommenters failed: %v", err)
	}

	if len(critics) != 20 {
		t.Fatalf("Expected 20 critics, got %d", len(critics))
	}

	// Strictly non-increasing counts
	for i := 1; i < len(critics); i++ {
		if critics[i].Count > critics[i-1].Count {
			t.Errorf("Counts not non-increasing at %d: %d > %d", i, critics[i].Count, critics[i-1].Count)
		}
	}

	// Top critic wrote 25 comments
	if critics[0].Email != "user24@test.com" || critics[0].Count != 25 {
		t.Errorf("Expected user24@test.com with 25, got %s with %d", critics[0].Email, critics[0].Count)
	}
}

func TestMockCommentRepository_MostActiveCommenters_FewerThan20(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	repo.AddComment(ctx, newComment("a@b.com", "one"))
	repo.AddComment(ctx, newComment("a@b.com", "two"))
	repo.AddComment(ctx, newComment("c@d.com", "three"))

	critics, err := repo.MostActiveCommenters(ctx)
	if err != nil {
		t.Fatalf("MostActiveCommenters failed: %v", err)
	}
	if len(critics) != 2 {
		t.Fatalf("Expected 2 critics, got %d", len(critics))
	}
	if critics[0].Email != "a@b.com" || critics[0].Count != 2 {
		t.Errorf("Expected a@b.com with 2, got %s with %d", critics[0].Email, critics[0].Count)
	}
}

func TestMockCommentRepository_ListByEmail(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		comment := newComment("a@b.com", fmt.Sprintf("text %d", i))
		comment.Date = base.Add(time.Duration(i) * time.Minute)
		repo.AddComment(ctx, comment)
	}
	repo.AddComment(ctx, newComment("other@test.com", "noise"))

	comments, err := repo.ListByEmail(ctx, "a@b.com", 3)
	if err != nil {
		t.Fatalf("ListByEmail failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("Expected 3 comments, got %d", len(comments))
	}
	if comments[0].Text != "text 4" {
		t.Errorf("Expected newest first, got '%s'", comments[0].Text)
	}
	for _, comment := range comments {
		if comment.Email != "a@b.com" {
			t.Errorf("Got comment for wrong author: %s", comment.Email)
		}
	}
}
