package service

import (
	"errors"
	"testing"

	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/models"
	"github.com/linque-cms/internal/repository"
)

func TestLoginIssuesVerifiableToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1},
	}, repository.NewAdminRepository(db))

	hash, err := svc.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := &models.Admin{Username: "editor", PasswordHash: hash}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}

	got, token, _, err := svc.Login("editor", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Username != "editor" {
		t.Fatalf("unexpected admin %s", got.Username)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Username != "editor" || claims.AdminID != admin.ID {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1},
	}, repository.NewAdminRepository(db))

	hash, err := svc.HashPassword("right-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := db.Create(&models.Admin{Username: "editor", PasswordHash: hash}).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}

	if _, _, _, err := svc.Login("editor", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "right-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestParseJWTRejectsForeignToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "secret-a", ExpireHours: 1},
	}, repository.NewAdminRepository(db))
	other := NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "secret-b", ExpireHours: 1},
	}, repository.NewAdminRepository(db))

	token, _, err := other.GenerateJWT(&models.Admin{Username: "editor"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ParseJWT(token); err == nil {
		t.Fatal("expected verification failure for token signed with another secret")
	}
}
