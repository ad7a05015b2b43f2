package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atelier-lumen/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockContactRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc   func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc   func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sub)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_SetsCreatedAt(t *testing.T) {
	before := time.Now().UTC()
	var saved *model.ContactSubmission
	mock := &mockContactRepository{
		saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			saved = sub
			return nil
		},
	}
	svc := NewContactService(mock)

	sub := &model.ContactSubmission{
		FullName: "Jean Dupont",
		Email:    "jean@example.com",
		Subject:  model.SubjectWebDesign,
	}
	if err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if saved.CreatedAt.Before(before) || saved.CreatedAt.After(time.Now().UTC()) {
		t.Errorf("CreatedAt = %v, want between test start and now", saved.CreatedAt)
	}
}

func TestContactService_Submit_PropagatesRepoError(t *testing.T) {
	wantErr := errors.New("connection refused")
	mock := &mockContactRepository{
		saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			return wantErr
		},
	}
	svc := NewContactService(mock)

	err := svc.Submit(context.Background(), &model.ContactSubmission{Email: "a@b.c"})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

// ---------------------------------------------------------------------------
// List / Delete tests
// ---------------------------------------------------------------------------

func TestContactService_List_PassesOptions(t *testing.T) {
	var gotOpts model.ContactListOptions
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
			gotOpts = opts
			return []*model.ContactSubmission{{ID: 1}}, nil
		},
	}
	svc := NewContactService(mock)

	subs, err := svc.List(context.Background(), model.ContactListOptions{Limit: 50, Offset: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("len = %d, want 1", len(subs))
	}
	if gotOpts.Limit != 50 || gotOpts.Offset != 10 {
		t.Errorf("opts = %+v, want limit=50 offset=10", gotOpts)
	}
}

func TestContactService_Delete_PassesID(t *testing.T) {
	var gotID int64
	mock := &mockContactRepository{
		deleteFunc: func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		},
	}
	svc := NewContactService(mock)

	if err := svc.Delete(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 42 {
		t.Errorf("id = %d, want 42", gotID)
	}
}
