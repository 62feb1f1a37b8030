package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/parcelpro/tracking-service/internal/core/domain"
)

const testSecret = "test-secret"

func courierRepoWithPassword(t *testing.T, id, password string) *stubCourierRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := newStubCourierRepo()
	repo.couriers[id] = &domain.Courier{ID: id, Name: "Courier " + id, PasswordHash: string(hash)}
	return repo
}

func TestLogin_Success(t *testing.T) {
	repo := courierRepoWithPassword(t, "CR001", "john123")
	svc := NewAuthService(repo, testSecret, time.Hour)

	token, courier, err := svc.Login(context.Background(), "CR001", "john123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if courier.ID != "CR001" {
		t.Errorf("expected courier CR001, got %s", courier.ID)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["courier_id"] != "CR001" {
		t.Errorf("expected courier_id claim CR001, got %v", claims["courier_id"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token must carry an expiry")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := courierRepoWithPassword(t, "CR001", "john123")
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "CR001", "nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Unknown courier and wrong password must return the same error, so
// login responses cannot be used to probe which IDs exist.
func TestLogin_UnknownCourierLooksLikeWrongPassword(t *testing.T) {
	repo := courierRepoWithPassword(t, "CR001", "john123")
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, _, unknownErr := svc.Login(context.Background(), "CR999", "john123")
	_, _, wrongErr := svc.Login(context.Background(), "CR001", "nope")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) || !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", unknownErr, wrongErr)
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubCourierRepo(), testSecret, time.Hour)

	for _, tc := range []struct{ id, password string }{
		{"", "john123"},
		{"CR001", ""},
		{"", ""},
	} {
		if _, _, err := svc.Login(context.Background(), tc.id, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): expected ErrInvalidCredentials, got %v", tc.id, tc.password, err)
		}
	}
}
