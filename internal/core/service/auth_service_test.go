package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, newStubRevoker(), "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), "Alice", "alice@club.test", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("registration must always produce a member, got %q", user.Role)
	}
	if user.IsVerified {
		t.Fatal("new accounts start unverified")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("returned token does not parse: %v", err)
	}
	if claims["sub"] != user.ID {
		t.Fatalf("token subject mismatch: %v", claims["sub"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatal("token must carry a jti for revocation")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), "", "a@club.test", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Alice", "a@club.test", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, newStubRevoker(), "secret", time.Hour)

	_, _, _ = svc.Register(context.Background(), "Alice", "alice@club.test", "pass123")
	if _, _, err := svc.Register(context.Background(), "Other", "alice@club.test", "pass456"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, newStubRevoker(), "secret", time.Hour)
	_, _, _ = svc.Register(context.Background(), "Alice", "alice@club.test", "pass123")

	token, user, err := svc.Login(context.Background(), "alice@club.test", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user == nil {
		t.Fatal("expected token and user")
	}

	if _, _, err := svc.Login(context.Background(), "alice@club.test", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@club.test", "pass123"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubUserRepo(), revoker, "secret", time.Hour)

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := revoker.revoked["jti-1"]; !ok {
		t.Fatal("expected jti to be revoked")
	}

	// Tokens already past expiry need no denylist entry.
	if err := svc.Logout(context.Background(), "jti-2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("logout of expired token failed: %v", err)
	}
	if _, ok := revoker.revoked["jti-2"]; ok {
		t.Fatal("expired token must not be recorded")
	}
}
