package service

import (
	"context"
	"errors"
	"testing"

	"athletehub/internal/entity"

	"github.com/google/uuid"
)

type stubAnnouncementRepo struct {
	CreateFn   func(ctx context.Context, announcement *entity.Announcement) error
	FindByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	ListFn     func(ctx context.Context) ([]entity.Announcement, error)
	UpdateFn   func(ctx context.Context, announcement *entity.Announcement) error
	DeleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (s *stubAnnouncementRepo) Create(ctx context.Context, a *entity.Announcement) error {
	if s.CreateFn == nil {
		return errors.New("unexpected Create")
	}
	return s.CreateFn(ctx, a)
}

func (s *stubAnnouncementRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	if s.FindByIDFn == nil {
		return nil, nil
	}
	return s.FindByIDFn(ctx, id)
}

func (s *stubAnnouncementRepo) List(ctx context.Context) ([]entity.Announcement, error) {
	if s.ListFn == nil {
		return nil, nil
	}
	return s.ListFn(ctx)
}

func (s *stubAnnouncementRepo) Update(ctx context.Context, a *entity.Announcement) error {
	if s.UpdateFn == nil {
		return nil
	}
	return s.UpdateFn(ctx, a)
}

func (s *stubAnnouncementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn == nil {
		return errors.New("unexpected Delete")
	}
	return s.DeleteFn(ctx, id)
}

func TestAnnouncementCreateRejectsEmpty(t *testing.T) {
	svc := NewAnnouncementService(&stubAnnouncementRepo{})
	if _, err := svc.Create(context.Background(), uuid.New(), "  ", "body"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestAnnouncementUpdatePartial(t *testing.T) {
	existing := &entity.Announcement{ID: uuid.New(), Title: "Gym Closed", Content: "Closed on Friday"}
	repo := &stubAnnouncementRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) { return existing, nil },
		UpdateFn:   func(ctx context.Context, a *entity.Announcement) error { return nil },
	}
	svc := NewAnnouncementService(repo)

	updated, err := svc.Update(context.Background(), existing.ID, "", "Closed all weekend")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != "Gym Closed" {
		t.Fatal("blank title must keep the old one")
	}
	if updated.Content != "Closed all weekend" {
		t.Fatal("content not updated")
	}
}

func TestAnnouncementMissingRows(t *testing.T) {
	repo := &stubAnnouncementRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) { return nil, nil },
	}
	svc := NewAnnouncementService(repo)

	if _, err := svc.Update(context.Background(), uuid.New(), "x", "y"); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Fatalf("update: got %v, want ErrAnnouncementNotFound", err)
	}
	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Fatalf("delete: got %v, want ErrAnnouncementNotFound", err)
	}
}
