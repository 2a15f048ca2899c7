// AngelaMos | 2026
// dto.go

package note

import (
	"time"

	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

type CreateNoteRequest struct {
	Title   string   `json:"title"   validate:"required,min=1,max=200"`
	Content string   `json:"content" validate:"max=10000"`
	Tags    []string `json:"tags"    validate:"omitempty,max=20,dive,min=1,max=50"`
}

type UpdateNoteRequest struct {
	Title   *string   `json:"title,omitempty"   validate:"omitempty,min=1,max=200"`
	Content *string   `json:"content,omitempty" validate:"omitempty,max=10000"`
	Tags    *[]string `json:"tags,omitempty"    validate:"omitempty,max=20,dive,min=1,max=50"`
}

// toUpdate keeps an explicit empty tag list distinct from an omitted one.
func (r UpdateNoteRequest) toUpdate() ledger.NoteUpdate {
	upd := ledger.NoteUpdate{Title: r.Title, Content: r.Content}
	if r.Tags != nil {
		upd.Tags = append([]string{}, *r.Tags...)
	}
	return upd
}

type NoteResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type NoteListResponse struct {
	Count int            `json:"count"`
	Notes []NoteResponse `json:"notes"`
}

type DeleteNoteResponse struct {
	DeletedNoteID int64 `json:"deleted_note_id"`
}

func ToNoteResponse(n ledger.Note) NoteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        int64(n.ID),
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func ToNoteResponseList(notes []ledger.Note) []NoteResponse {
	responses := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, ToNoteResponse(n))
	}
	return responses
}
