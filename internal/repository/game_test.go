package repository

import (
	"testing"
)

func TestNewGameRepository(t *testing.T) {
	repo := NewGameRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil GameRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestGameSentinelErrors(t *testing.T) {
	if ErrGameNotFound.Error() != "game not found" {
		t.Fatalf("unexpected error message: %s", ErrGameNotFound.Error())
	}
	if ErrDuplicateName.Error() != "game name already in use" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateName.Error())
	}
	if ErrOwnerNotFound.Error() != "owner not found" {
		t.Fatalf("unexpected error message: %s", ErrOwnerNotFound.Error())
	}
}
