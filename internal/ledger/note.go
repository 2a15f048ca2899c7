// AngelaMos | 2026
// note.go

package ledger

import (
	"slices"
	"time"
)

type NoteID int64

type Note struct {
	ID        NoteID
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (n *Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

func (n *Note) clone() Note {
	c := *n
	c.Tags = slices.Clone(n.Tags)
	if n.UpdatedAt != nil {
		t := *n.UpdatedAt
		c.UpdatedAt = &t
	}
	return c
}

type NewNote struct {
	Title   string
	Content string
	Tags    []string
}

// NoteUpdate changes only non-nil fields. A non-nil empty Tags clears the tags.
type NoteUpdate struct {
	Title   *string
	Content *string
	Tags    []string
}

type NoteFilter struct {
	Tag string
}

func (l *Ledger) CreateNote(in NewNote) (Note, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := &Note{
		ID:        l.nextNoteID(),
		Title:     in.Title,
		Content:   in.Content,
		Tags:      uniqueTags(in.Tags),
		CreatedAt: l.now(),
	}
	l.notes[n.ID] = n

	return n.clone(), nil
}

func (l *Ledger) GetNote(id NoteID) (Note, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n, ok := l.notes[id]
	if !ok {
		return Note{}, noteNotFound(id)
	}
	return n.clone(), nil
}

func (l *Ledger) ListNotes(f NoteFilter) []Note {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matches := inIDOrder(l.notes, func(n *Note) bool {
		return f.Tag == "" || n.HasTag(f.Tag)
	})
	return copyNotes(matches)
}

// UpdateNote stamps UpdatedAt on every successful call, even when upd is empty.
func (l *Ledger) UpdateNote(id NoteID, upd NoteUpdate) (Note, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, ok := l.notes[id]
	if !ok {
		return Note{}, noteNotFound(id)
	}

	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Tags != nil {
		n.Tags = uniqueTags(upd.Tags)
	}

	now := l.now()
	n.UpdatedAt = &now

	return n.clone(), nil
}

func (l *Ledger) DeleteNote(id NoteID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.notes[id]; !ok {
		return noteNotFound(id)
	}
	delete(l.notes, id)

	return nil
}

// uniqueTags drops repeated tags, keeping first occurrences in order.
func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

func copyNotes(in []*Note) []Note {
	out := make([]Note, 0, len(in))
	for _, n := range in {
		out = append(out, n.clone())
	}
	return out
}
