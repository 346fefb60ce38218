package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

type stubApplicationService struct {
	submitFn       func(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error)
	listFn         func(ctx context.Context) ([]*domain.Application, error)
	listMineFn     func(ctx context.Context, userID string) (*ports.MyApplicationsResult, error)
	getFn          func(ctx context.Context, id string) (*domain.Application, error)
	updateStatusFn func(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}

func (s *stubApplicationService) Submit(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
	return s.submitFn(ctx, input)
}

func (s *stubApplicationService) List(ctx context.Context) ([]*domain.Application, error) {
	return s.listFn(ctx)
}

func (s *stubApplicationService) ListMine(ctx context.Context, userID string) (*ports.MyApplicationsResult, error) {
	return s.listMineFn(ctx, userID)
}

func (s *stubApplicationService) Get(ctx context.Context, id string) (*domain.Application, error) {
	return s.getFn(ctx, id)
}

func (s *stubApplicationService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	return s.updateStatusFn(ctx, id, status)
}

// stubUserFinder satisfies ports.UserRepository; only FindByID matters here.
type stubUserFinder struct {
	user *domain.User
}

func (r *stubUserFinder) Create(context.Context, *domain.User) error { return nil }

func (r *stubUserFinder) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserFinder) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserFinder) List(context.Context) ([]*domain.User, error) { return nil, nil }

func (r *stubUserFinder) Update(context.Context, string, ports.UserUpdate) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserFinder) Delete(context.Context, string) error { return nil }

func (r *stubUserFinder) Count(context.Context) (int64, error) { return 0, nil }

func applicantIdentity(c echo.Context) {
	c.Set("user_id", "user-1")
	c.Set("email", "alice@example.com")
	c.Set("role", domain.RoleUser)
}

func TestApplicationHandler_Submit_DefaultsApplicantFromAccount(t *testing.T) {
	var got ports.SubmitApplicationInput
	svc := &stubApplicationService{
		submitFn: func(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
			got = input
			return &domain.Application{
				ID:              "app-1",
				AccommodationID: input.AccommodationID,
				UserID:          input.UserID,
				Status:          domain.ApplicationPending,
			}, nil
		},
	}
	users := &stubUserFinder{user: &domain.User{
		ID:    "user-1",
		Email: "alice@example.com",
		Name:  "Alice",
		Phone: "+555",
		Role:  domain.RoleUser,
	}}
	h := NewApplicationHandler(svc, users)

	c, rec := newTestContext(t, http.MethodPost, "/v1/applications", `{"accommodation_id":"acc-1","message":"hi"}`)
	applicantIdentity(c)
	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if got.UserName != "Alice" || got.UserEmail != "alice@example.com" {
		t.Fatalf("applicant details not defaulted from account: %+v", got)
	}
	if got.UserPhone != "+555" {
		t.Fatalf("phone not defaulted from account: %q", got.UserPhone)
	}
}

func TestApplicationHandler_Submit_ExplicitPhoneWins(t *testing.T) {
	var got ports.SubmitApplicationInput
	svc := &stubApplicationService{
		submitFn: func(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
			got = input
			return &domain.Application{ID: "app-1", Status: domain.ApplicationPending}, nil
		},
	}
	users := &stubUserFinder{user: &domain.User{ID: "user-1", Phone: "+555", Role: domain.RoleUser}}
	h := NewApplicationHandler(svc, users)

	c, _ := newTestContext(t, http.MethodPost, "/v1/applications", `{"accommodation_id":"acc-1","user_phone":"+777"}`)
	applicantIdentity(c)
	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.UserPhone != "+777" {
		t.Fatalf("request phone should win, got %q", got.UserPhone)
	}
}

func TestApplicationHandler_Submit_AdminForbidden(t *testing.T) {
	svc := &stubApplicationService{
		submitFn: func(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewApplicationHandler(svc, &stubUserFinder{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/applications", `{"accommodation_id":"acc-1"}`)
	c.Set("user_id", "admin-1")
	c.Set("role", domain.RoleAdmin)

	err := h.Submit(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestApplicationHandler_Submit_MissingAccommodationID(t *testing.T) {
	svc := &stubApplicationService{
		submitFn: func(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewApplicationHandler(svc, &stubUserFinder{user: &domain.User{ID: "user-1"}})

	c, _ := newTestContext(t, http.MethodPost, "/v1/applications", `{"message":"hi"}`)
	applicantIdentity(c)

	err := h.Submit(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestApplicationHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := &stubApplicationService{
		updateStatusFn: func(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewApplicationHandler(svc, &stubUserFinder{})

	c, _ := newTestContext(t, http.MethodPatch, "/v1/applications/app-1/status", `{"status":"Archived"}`)
	c.SetParamNames("id")
	c.SetParamValues("app-1")

	err := h.UpdateStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestApplicationHandler_ListMine(t *testing.T) {
	svc := &stubApplicationService{
		listMineFn: func(ctx context.Context, userID string) (*ports.MyApplicationsResult, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &ports.MyApplicationsResult{
				Items: []*domain.Application{
					{ID: "app-1", UserID: userID, Status: domain.ApplicationApproved},
				},
				Counts: ports.ApplicationStatusCounts{Total: 1, Approved: 1},
			}, nil
		},
	}
	h := NewApplicationHandler(svc, &stubUserFinder{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/applications/mine", "")
	applicantIdentity(c)
	if err := h.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	counts, ok := resp["counts"].(map[string]any)
	if !ok || counts["total"] != float64(1) || counts["approved"] != float64(1) {
		t.Fatalf("unexpected counts payload: %+v", resp["counts"])
	}
}
