package services

import (
	"errors"
	"testing"

	"simplecrm/internal/authz"
	"simplecrm/internal/models"
)

func newUserFixture() (*mockUserRepo, *mockAgentRepo, UserService, AuthService) {
	users := newMockUserRepo()
	agents := newMockAgentRepo(users)
	auth := NewAuthService([]byte("test-secret"))
	svc := NewUserService(users, &mockOrgRepo{users: users}, agents, auth)
	return users, agents, svc, auth
}

func TestRegisterOrganizerProvisionsOrganization(t *testing.T) {
	users, _, svc, _ := newUserFixture()

	user, err := svc.RegisterOrganizer(&models.SignupRequest{
		Email: "Owner@CRM.Test", FirstName: "Olga", LastName: "Ivanova", Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !user.IsOrganizer {
		t.Error("registered user must be an organizer")
	}
	if user.Email != "owner@crm.test" {
		t.Errorf("email = %q, want normalized", user.Email)
	}

	// организация создаётся явно вместе с пользователем
	var found bool
	for _, org := range users.orgs {
		if org.UserID == user.ID {
			found = true
		}
	}
	if !found {
		t.Error("organization must be provisioned at registration")
	}
}

func TestRegisterOrganizerDuplicateEmail(t *testing.T) {
	_, _, svc, _ := newUserFixture()

	req := &models.SignupRequest{
		Email: "owner@crm.test", FirstName: "A", LastName: "B", Password: "secret-pass",
	}
	if _, err := svc.RegisterOrganizer(req); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RegisterOrganizer(req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	_, _, svc, _ := newUserFixture()

	if _, err := svc.RegisterOrganizer(&models.SignupRequest{
		Email: "owner@crm.test", FirstName: "A", LastName: "B", Password: "secret-pass",
	}); err != nil {
		t.Fatal(err)
	}

	token, user, err := svc.Login("owner@crm.test", "secret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user == nil {
		t.Fatal("login must return a token and the user")
	}

	if _, _, err := svc.Login("owner@crm.test", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("nobody@crm.test", "secret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user = %v, want ErrInvalidCredentials", err)
	}
}

// Не-организатор без профиля агента — нарушение предусловия, не 401.
func TestLoginMissingAgentProfile(t *testing.T) {
	users, _, svc, auth := newUserFixture()

	hash, err := auth.HashPassword("secret-pass")
	if err != nil {
		t.Fatal(err)
	}
	// пользователь с ролью агента, но без записи агента
	broken := &models.User{ID: 99, Email: "ghost@crm.test", PasswordHash: hash}
	users.users[broken.ID] = broken

	if _, _, err := svc.Login("ghost@crm.test", "secret-pass"); !errors.Is(err, authz.ErrMissingAgentProfile) {
		t.Fatalf("err = %v, want ErrMissingAgentProfile", err)
	}
}
