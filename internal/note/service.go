// AngelaMos | 2026
// service.go

package note

import (
	"context"
	"strings"

	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

type Store interface {
	CreateNote(in ledger.NewNote) (ledger.Note, error)
	GetNote(id ledger.NoteID) (ledger.Note, error)
	ListNotes(f ledger.NoteFilter) []ledger.Note
	UpdateNote(id ledger.NoteID, upd ledger.NoteUpdate) (ledger.Note, error)
	DeleteNote(id ledger.NoteID) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(_ context.Context, req CreateNoteRequest) (ledger.Note, error) {
	return s.store.CreateNote(ledger.NewNote{
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
		Tags:    req.Tags,
	})
}

func (s *Service) Get(_ context.Context, id ledger.NoteID) (ledger.Note, error) {
	return s.store.GetNote(id)
}

func (s *Service) List(_ context.Context, tag string) []ledger.Note {
	return s.store.ListNotes(ledger.NoteFilter{Tag: tag})
}

func (s *Service) Update(
	_ context.Context,
	id ledger.NoteID,
	req UpdateNoteRequest,
) (ledger.Note, error) {
	return s.store.UpdateNote(id, req.toUpdate())
}

func (s *Service) Delete(_ context.Context, id ledger.NoteID) error {
	return s.store.DeleteNote(id)
}
