package service

import (
	"context"
	"testing"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/ports"
)

func newUserService(users *stubUserRepo, apps *stubApplicationRepo, accs *stubAccommodationRepo) *UserService {
	return NewUserService(users, apps, accs, discardLogger)
}

func TestUserService_Create_UnrecognisedRoleFallsBackToUser(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubApplicationRepo(), newStubAccommodationRepo())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "x@example.com",
		Password: "pw",
		Role:     "superuser",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected fallback to user role, got %s", user.Role)
	}
}

func TestUserService_Create_AdminRoleKept(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubApplicationRepo(), newStubAccommodationRepo())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "boss@example.com",
		Password: "pw",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}
}

func TestUserService_Delete_SelfDeletionRejected(t *testing.T) {
	users := newStubUserRepo(testUser("admin-1", "admin@example.com", domain.RoleAdmin))
	svc := newUserService(users, newStubApplicationRepo(), newStubAccommodationRepo())

	if err := svc.Delete(context.Background(), "admin-1", "admin-1"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for self-deletion, got %v", err)
	}
	if len(users.items) != 1 {
		t.Fatalf("account must survive rejected deletion")
	}

	if err := svc.Delete(context.Background(), "admin-1", "admin-2"); err != nil {
		t.Fatalf("deletion by another admin failed: %v", err)
	}
	if len(users.items) != 0 {
		t.Fatalf("account not deleted")
	}
}

func TestUserService_Get_IncludesApplications(t *testing.T) {
	users := newStubUserRepo(testUser("user-1", "a@example.com", domain.RoleUser))
	apps := newStubApplicationRepo()
	appSvc := NewApplicationService(apps, discardLogger)
	if _, err := appSvc.Submit(context.Background(), submitInput("user-1")); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if _, err := appSvc.Submit(context.Background(), submitInput("user-2")); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	svc := newUserService(users, apps, newStubAccommodationRepo())
	detail, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if detail.User.Email != "a@example.com" {
		t.Fatalf("wrong account: %+v", detail.User)
	}
	if len(detail.Applications) != 1 {
		t.Fatalf("expected only the account's own applications, got %d", len(detail.Applications))
	}
}

func TestUserService_Dashboard_Counts(t *testing.T) {
	users := newStubUserRepo(
		testUser("admin-1", "admin@example.com", domain.RoleAdmin),
		testUser("user-1", "a@example.com", domain.RoleUser),
	)

	accs := newStubAccommodationRepo()
	accSvc := NewAccommodationService(accs, discardLogger)
	if _, err := accSvc.Create(context.Background(), listingInput("One", "Room", "Downtown", "Any")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	apps := newStubApplicationRepo()
	appSvc := NewApplicationService(apps, discardLogger)
	first, _ := appSvc.Submit(context.Background(), submitInput("user-1"))
	_, _ = appSvc.Submit(context.Background(), submitInput("user-1"))
	if _, err := appSvc.UpdateStatus(context.Background(), first.ID, domain.ApplicationApproved); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	svc := newUserService(users, apps, accs)
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.Accommodations != 1 || stats.Applications != 2 || stats.PendingApplications != 1 || stats.Users != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
