package core

import (
	"context"
	"fmt"
	"time"

	"invoiceease/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Note is a free-form user note. Notes are user-scoped only: they follow
// the user across business profiles.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteService is the CRUD surface for the user's notes.
type NoteService interface {
	List(ctx context.Context) ([]Note, error)
	Get(ctx context.Context, id string) (*Note, error)
	Add(ctx context.Context, content string) (*Note, error)
	// Update replaces the note content and refreshes UpdatedAt. Unknown ids
	// are a silent no-op.
	Update(ctx context.Context, id, content string) error
	Remove(ctx context.Context, id string) error
}

type noteService struct {
	notes  *storage.Collection[Note]
	userID string
}

// NewNoteService constructs a NoteService for the given scope.
func NewNoteService(store storage.Store, scope Scope, log zerolog.Logger) NoteService {
	return &noteService{
		notes:  storage.NewCollection[Note](store, scope.notesKey(), log),
		userID: scope.UserID,
	}
}

func (s *noteService) List(ctx context.Context) ([]Note, error) {
	return s.notes.Load(ctx)
}

func (s *noteService) Get(ctx context.Context, id string) (*Note, error) {
	notes, err := s.notes.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, nil
}

func (s *noteService) Add(ctx context.Context, content string) (*Note, error) {
	notes, err := s.notes.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note := Note{
		ID:        uuid.NewString(),
		Content:   content,
		UserID:    s.userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.notes.Save(ctx, append(notes, note)); err != nil {
		return nil, fmt.Errorf("persist notes: %w", err)
	}
	return &note, nil
}

func (s *noteService) Update(ctx context.Context, id, content string) error {
	notes, err := s.notes.Load(ctx)
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		notes[i].Content = content
		notes[i].UpdatedAt = time.Now()
		return s.notes.Save(ctx, notes)
	}
	return nil
}

func (s *noteService) Remove(ctx context.Context, id string) error {
	notes, err := s.notes.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			remaining = append(remaining, n)
		}
	}
	return s.notes.Save(ctx, remaining)
}
