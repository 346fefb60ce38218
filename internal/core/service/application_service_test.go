package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

type stubApplicationRepo struct {
	items []*domain.Application
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{}
}

func (r *stubApplicationRepo) Create(_ context.Context, a *domain.Application) error {
	clone := *a
	r.items = append(r.items, &clone)
	return nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	for _, a := range r.items {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) List(_ context.Context) ([]*domain.Application, error) {
	out := make([]*domain.Application, 0, len(r.items))
	for _, a := range r.items {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubApplicationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Application, error) {
	out := make([]*domain.Application, 0)
	for _, a := range r.items {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	for _, a := range r.items {
		if a.ID == id {
			a.Status = status
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *stubApplicationRepo) CountByStatus(_ context.Context, status domain.ApplicationStatus) (int64, error) {
	var n int64
	for _, a := range r.items {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func submitInput(userID string) ports.SubmitApplicationInput {
	return ports.SubmitApplicationInput{
		AccommodationID: "acc-1",
		UserID:          userID,
		UserName:        "Test User",
		UserEmail:       "user@example.com",
		UserPhone:       "+100",
		Message:         "interested",
	}
}

func TestApplicationService_Submit_ForcesPendingStatus(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, discardLogger)

	before := time.Now().UTC()
	app, err := svc.Submit(context.Background(), submitInput("user-1"))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("expected Pending, got %s", app.Status)
	}
	if app.ID == "" {
		t.Fatalf("expected generated id")
	}
	if app.CreatedAt.Before(before) {
		t.Fatalf("createdAt not stamped: %v", app.CreatedAt)
	}
}

func TestApplicationService_Submit_OrphanReferenceAccepted(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, discardLogger)

	// The accommodation id is never resolved, so a reference to a deleted
	// listing still submits.
	input := submitInput("user-1")
	input.AccommodationID = "deleted-listing"
	app, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if app.AccommodationID != "deleted-listing" {
		t.Fatalf("reference not preserved: %s", app.AccommodationID)
	}
}

func TestApplicationService_UpdateStatus_PendingToApproved(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, discardLogger)

	app, err := svc.Submit(context.Background(), submitInput("user-1"))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), app.ID, domain.ApplicationApproved)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.ApplicationApproved {
		t.Fatalf("expected Approved, got %s", updated.Status)
	}
}

func TestApplicationService_UpdateStatus_TerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []domain.ApplicationStatus{domain.ApplicationApproved, domain.ApplicationRejected} {
		repo := newStubApplicationRepo()
		svc := NewApplicationService(repo, discardLogger)

		app, err := svc.Submit(context.Background(), submitInput("user-1"))
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
		if _, err := svc.UpdateStatus(context.Background(), app.ID, terminal); err != nil {
			t.Fatalf("transition to %s failed: %v", terminal, err)
		}

		for _, next := range []domain.ApplicationStatus{domain.ApplicationPending, domain.ApplicationApproved, domain.ApplicationRejected} {
			_, err := svc.UpdateStatus(context.Background(), app.ID, next)
			if !errors.Is(err, domain.ErrInvalidTransition) {
				t.Fatalf("transition %s -> %s should fail with ErrInvalidTransition, got %v", terminal, next, err)
			}
		}

		got, err := svc.Get(context.Background(), app.ID)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if got.Status != terminal {
			t.Fatalf("rejected transition mutated record: %s", got.Status)
		}
	}
}

func TestApplicationService_UpdateStatus_OnlyTouchesTarget(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, discardLogger)

	first, _ := svc.Submit(context.Background(), submitInput("user-1"))
	second, _ := svc.Submit(context.Background(), submitInput("user-2"))

	if _, err := svc.UpdateStatus(context.Background(), first.ID, domain.ApplicationRejected); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	other, err := svc.Get(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if other.Status != domain.ApplicationPending {
		t.Fatalf("sibling record mutated: %s", other.Status)
	}
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), discardLogger)

	if _, err := svc.UpdateStatus(context.Background(), "missing", domain.ApplicationApproved); err != domain.ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationService_ListMine_CountsByStatus(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, discardLogger)

	var ids []string
	for i := 0; i < 3; i++ {
		app, err := svc.Submit(context.Background(), submitInput("user-1"))
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
		ids = append(ids, app.ID)
	}
	// Someone else's application must not show up.
	if _, err := svc.Submit(context.Background(), submitInput("user-2")); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), ids[0], domain.ApplicationApproved); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), ids[1], domain.ApplicationRejected); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	result, err := svc.ListMine(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(result.Items))
	}
	c := result.Counts
	if c.Total != 3 || c.Pending != 1 || c.Approved != 1 || c.Rejected != 1 {
		t.Fatalf("unexpected counts: %+v", c)
	}
}
