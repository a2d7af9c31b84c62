package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/linque-cms/internal/repository"
)

func newContactService(t *testing.T) *ContactService {
	t.Helper()
	db := setupTestDB(t)
	return NewContactService(repository.NewContactMessageRepository(db))
}

func TestContactSubmitStoresTrimmedMessage(t *testing.T) {
	svc := newContactService(t)

	msg, err := svc.Submit(ContactInput{
		Name:    "  Dana Reeve  ",
		Email:   "dana@example.com",
		Company: " Example Co ",
		Message: "  We need help with a compensation review.  ",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if msg.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if msg.Name != "Dana Reeve" || msg.Company != "Example Co" {
		t.Fatalf("fields not trimmed: %+v", msg)
	}

	msgs, total, err := svc.List(1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(msgs) != 1 {
		t.Fatalf("expected 1 message, got total=%d len=%d", total, len(msgs))
	}
}

func TestContactSubmitValidation(t *testing.T) {
	svc := newContactService(t)

	cases := []ContactInput{
		{Email: "a@example.com", Message: "hi"},
		{Name: "A", Message: "hi"},
		{Name: "A", Email: "a@example.com"},
		{Name: "A", Email: "not-an-email", Message: "hi"},
		{Name: "A", Email: "a@example.com", Message: strings.Repeat("x", maxContactMessageLength+1)},
	}
	for i, input := range cases {
		if _, err := svc.Submit(input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}
