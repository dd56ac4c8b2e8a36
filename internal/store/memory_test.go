package store

import (
	"context"
	"testing"
	"time"

	"fortitwin/internal/model"
)

func testSession() *model.Session {
	return &model.Session{
		CandidateID: "cand-1",
		JobTitle:    "Backend Engineer",
		Company:     "Acme",
		Persona:     "Default Manager",
		Mode:        model.ModeOffline,
		StartedAt:   time.Now().UTC(),
	}
}

func TestMemoryStore_CreateAssignsID(t *testing.T) {
	s := NewMemoryStore()
	sess := testSession()
	if err := s.Create(context.Background(), sess); err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := s.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CandidateID != "cand-1" {
		t.Fatalf("wrong session: %+v", got)
	}
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "missing"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStore_UpdateUnknown(t *testing.T) {
	s := NewMemoryStore()
	sess := testSession()
	sess.ID = "never-created"
	if err := s.Update(context.Background(), sess); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStore_UpdatePersistsTranscript(t *testing.T) {
	s := NewMemoryStore()
	sess := testSession()
	s.Create(context.Background(), sess)

	sess.Transcript = append(sess.Transcript, model.TranscriptEntry{Role: model.RoleInterviewer, Text: "Q1"})
	if err := s.Update(context.Background(), sess); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := s.Get(context.Background(), sess.ID)
	if len(got.Transcript) != 1 || got.Transcript[0].Text != "Q1" {
		t.Fatalf("transcript not persisted: %+v", got.Transcript)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	sess := testSession()
	sess.Transcript = []model.TranscriptEntry{{Role: model.RoleInterviewer, Text: "Q1"}}
	s.Create(context.Background(), sess)

	got, _ := s.Get(context.Background(), sess.ID)
	got.Transcript[0].Text = "mutated"
	got.JobTitle = "mutated"

	again, _ := s.Get(context.Background(), sess.ID)
	if again.Transcript[0].Text != "Q1" || again.JobTitle != "Backend Engineer" {
		t.Fatalf("stored session mutated through returned pointer: %+v", again)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	sess := testSession()
	s.Create(context.Background(), sess)

	if err := s.Delete(context.Background(), sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(context.Background(), sess.ID); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
