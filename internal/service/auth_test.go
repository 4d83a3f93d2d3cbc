package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/youssef1892004/To-Do-List-App/internal/models"
	"github.com/youssef1892004/To-Do-List-App/internal/service"
)

type mockUserRepo struct {
	EmailExistsFunc    func(ctx context.Context, email string) (bool, error)
	UsernameExistsFunc func(ctx context.Context, username string) (bool, error)
	InsertFunc         func(ctx context.Context, user *models.User) error
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	GetByIDFunc        func(ctx context.Context, id string) (*models.User, error)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.EmailExistsFunc(ctx, email)
}
func (m *mockUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return m.UsernameExistsFunc(ctx, username)
}
func (m *mockUserRepo) Insert(ctx context.Context, user *models.User) error {
	return m.InsertFunc(ctx, user)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFunc(ctx, email)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func freeRepo() *mockUserRepo {
	return &mockUserRepo{
		EmailExistsFunc:    func(context.Context, string) (bool, error) { return false, nil },
		UsernameExistsFunc: func(context.Context, string) (bool, error) { return false, nil },
		InsertFunc:         func(context.Context, *models.User) error { return nil },
	}
}

func TestRegister_Success(t *testing.T) {
	var inserted *models.User
	repo := freeRepo()
	repo.InsertFunc = func(ctx context.Context, user *models.User) error {
		inserted = user
		return nil
	}
	svc := service.NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted == nil {
		t.Fatal("expected Insert to be called")
	}
	if user.ID == "" {
		t.Error("expected an assigned id")
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("hunter22")); err != nil {
		t.Error("stored hash does not match the password")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := service.NewAuthService(freeRepo(), "secret", time.Hour)
	_, err := svc.Register(context.Background(), "alice", "", "hunter22")
	if !errors.Is(err, service.ErrFieldsRequired) {
		t.Fatalf("Register error = %v; want ErrFieldsRequired", err)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := freeRepo()
	repo.EmailExistsFunc = func(context.Context, string) (bool, error) { return true, nil }
	repo.InsertFunc = func(context.Context, *models.User) error {
		t.Fatal("Insert must not be called for a taken email")
		return nil
	}
	svc := service.NewAuthService(repo, "secret", time.Hour)
	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "hunter22")
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("Register error = %v; want ErrEmailTaken", err)
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := freeRepo()
	repo.UsernameExistsFunc = func(context.Context, string) (bool, error) { return true, nil }
	svc := service.NewAuthService(repo, "secret", time.Hour)
	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "hunter22")
	if !errors.Is(err, service.ErrUsernameTaken) {
		t.Fatalf("Register error = %v; want ErrUsernameTaken", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	repo := freeRepo()
	repo.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		return &models.User{ID: "u1", Username: "alice", Email: email, PasswordHash: hash}, nil
	}
	svc := service.NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("user id = %q; want u1", user.ID)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	repo := freeRepo()
	repo.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		if email == "ghost@example.com" {
			return nil, sql.ErrNoRows
		}
		return &models.User{ID: "u1", PasswordHash: hash}, nil
	}
	svc := service.NewAuthService(repo, "secret", time.Hour)

	_, unknownErr := svc.Login(context.Background(), "ghost@example.com", "hunter22")
	_, wrongErr := svc.Login(context.Background(), "alice@example.com", "nope")
	if !errors.Is(unknownErr, service.ErrInvalidCredentials) || !errors.Is(wrongErr, service.ErrInvalidCredentials) {
		t.Fatalf("errors = %v, %v; want ErrInvalidCredentials for both", unknownErr, wrongErr)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := service.NewAuthService(freeRepo(), "secret", time.Hour)

	token, err := svc.IssueToken("u1")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	userID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if userID != "u1" {
		t.Errorf("user id = %q; want u1", userID)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := service.NewAuthService(freeRepo(), "secret-a", time.Hour)
	verifier := service.NewAuthService(freeRepo(), "secret-b", time.Hour)

	token, err := issuer.IssueToken("u1")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for a foreign signature")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := service.NewAuthService(freeRepo(), "secret", -time.Minute)

	token, err := svc.IssueToken("u1")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
}

func TestUserByID_Absent(t *testing.T) {
	repo := freeRepo()
	repo.GetByIDFunc = func(context.Context, string) (*models.User, error) {
		return nil, sql.ErrNoRows
	}
	svc := service.NewAuthService(repo, "secret", time.Hour)
	_, err := svc.UserByID(context.Background(), "ghost")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("UserByID error = %v; want ErrNotFound", err)
	}
}
