package editor

import (
	"time"

	"go-payslip/internal/payslip"
)

type View string

const (
	ViewList      View = "list"
	ViewEditor    View = "editor"
	ViewTemplates View = "templates"
	ViewData      View = "data"
)

func (v View) Valid() bool {
	switch v {
	case ViewList, ViewEditor, ViewTemplates, ViewData:
		return true
	}
	return false
}

// Origin records how the current draft was started.
type Origin string

const (
	OriginNew      Origin = "new"
	OriginTemplate Origin = "template"
	OriginCopy     Origin = "copy-forward"
	OriginEdit     Origin = "edit"
)

// Session is the editing state of one browser tab. EditingID is the id of the
// stored payslip the draft will overwrite on save, empty for a new record.
type Session struct {
	ID        string                 `json:"id"`
	OwnerID   string                 `json:"ownerId"`
	View      View                   `json:"view"`
	EditingID string                 `json:"editingId,omitempty"`
	Origin    Origin                 `json:"origin,omitempty"`
	SourceID  string                 `json:"sourceId,omitempty"`
	Draft     *payslip.PayslipRecord `json:"draft,omitempty"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

func (s *Session) setDraft(draft payslip.Payslip, origin Origin, sourceID string) {
	record := payslip.ToRecord(draft)
	s.Draft = &record
	s.EditingID = draft.ID
	s.Origin = origin
	s.SourceID = sourceID
	s.View = ViewEditor
}
