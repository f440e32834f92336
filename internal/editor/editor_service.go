package editor

import (
	"context"
	"time"

	editorerrors "go-payslip/internal/editor/errors"
	"go-payslip/internal/payslip"
	"go-payslip/internal/shared/apperror"

	"github.com/google/uuid"
)

// PayslipSource is the part of the payslip service the editor drives.
type PayslipSource interface {
	GetByID(ctx context.Context, ownerID, id string) (payslip.Payslip, error)
	Save(ctx context.Context, ownerID string, p payslip.Payslip) (payslip.Payslip, error)
	CopyFromPrevious(ctx context.Context, ownerID, sourceID string) (payslip.Payslip, error)
	NewDraft(ctx context.Context) payslip.Payslip
}

type TemplateSource interface {
	Apply(ctx context.Context, ownerID, id string) (payslip.Payslip, error)
}

//go:generate mockgen -source=editor_service.go -destination=mock/editor_service_mock.go -package=mock
type Service interface {
	Open(ctx context.Context, ownerID string) (Session, error)
	Get(ctx context.Context, ownerID, id string) (Session, error)
	StartNew(ctx context.Context, ownerID, id string) (Session, error)
	StartFromTemplate(ctx context.Context, ownerID, id, templateID string) (Session, error)
	StartCopyForward(ctx context.Context, ownerID, id, sourceID string) (Session, error)
	Edit(ctx context.Context, ownerID, id, payslipID string) (Session, error)
	UpdateDraft(ctx context.Context, ownerID, id string, draft payslip.Payslip) (Session, error)
	Save(ctx context.Context, ownerID, id string) (Session, payslip.Payslip, error)
	SwitchView(ctx context.Context, ownerID, id string, view View) (Session, error)
	Close(ctx context.Context, ownerID, id string) error
}

type service struct {
	store     Store
	payslips  PayslipSource
	templates TemplateSource
	now       func() time.Time
}

func NewService(store Store, payslips PayslipSource, templates TemplateSource) Service {
	return NewServiceWithClock(store, payslips, templates, time.Now)
}

func NewServiceWithClock(store Store, payslips PayslipSource, templates TemplateSource, now func() time.Time) Service {
	return &service{store: store, payslips: payslips, templates: templates, now: now}
}

// Open starts an empty session on the list view.
func (s *service) Open(ctx context.Context, ownerID string) (Session, error) {
	session := Session{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		View:    ViewList,
	}
	return s.put(ctx, session)
}

func (s *service) Get(ctx context.Context, ownerID, id string) (Session, error) {
	session, err := s.load(ctx, ownerID, id)
	if err != nil {
		return Session{}, err
	}
	return *session, nil
}

// StartNew replaces the draft with an empty payslip for the current month.
func (s *service) StartNew(ctx context.Context, ownerID, id string) (Session, error) {
	session, err := s.load(ctx, ownerID, id)
	if err != nil {
		return Session{}, err
	}
	session.setDraft(s.payslips.NewDraft(ctx), OriginNew, "")
	return s.put(ctx, *session)
}

func (s *service) StartFromTemplate(ctx context.Context, ownerID, id, templateID string) (Session, error) {
	session, err := s.load(ctx, ownerID, id)
	if err != nil {
		return Session{}, err
	}
	draft, err := s.templates.Apply(ctx, ownerID, templateID)
	if err != nil {
		return Session{}, err
	}
	session.setDraft(draft, OriginTemplate, templateID)
	return s.put(ctx, *session)
}

// StartCopyForward drafts next month from sourceID, or from the latest payslip
// when sourceID is empty.
func (s *service) StartCopyForward(ctx context.Context, ownerID, id, sourceID string) (Session, error) {
	session, err := s.load(ctx, ownerID, id)
	if err != nil {
		return Session{}, err
	}
	draft, err := s.payslips.CopyFromPrevious(ctx, ownerID, sourceID)
	if err != nil {
		return Session{}, err
	}
	session.setDraft(draft, OriginCopy, sourceID)
	return s.put(ctx, *session)
}

// Edit loads a stored payslip so the next save overwrites it.
func (s *service) Edit(ctx context.Context, ownerID, id, payslipID string) (Session, error) {
	session, err := s.load(ctx, ownerID, id)
	if err != nil {
		return Session{}, err
	}
	stored, err := s.payslips.GetByID(ctx, ownerID, payslipID)
	if err != nil {
		return Session{}, err
	}
	session.setDraft(stored, OriginEdit, payslipID)
	return s.put(ctx, *session)
}

// UpdateDraft replaces the draft values. The record being edited does not change.
func (s *service) UpdateDraft(ctx context.Context, ownerID, id string, draft payslip.Payslip) (Session, error) {
	session, err := s.load(ctx, ownerID, id)
	if err != nil {
		return Session{}, err
	}

	draft.ID = session.EditingID
	draft.Recalculate()
	record := payslip.ToRecord(draft)
	session.Draft = &record
	session.View = ViewEditor
	return s.put(ctx, *session)
}

// Save stores the draft under EditingID and keeps editing the saved record.
func (s *service) Save(ctx context.Context, ownerID, id string) (Session, payslip.Payslip, error) {
	session, err := s.load(ctx, ownerID, id)
	if err != nil {
		return Session{}, payslip.Payslip{}, err
	}
	if session.Draft == nil {
		return Session{}, payslip.Payslip{}, editorerrors.ErrNoDraft
	}

	draft := session.Draft.ToEntity()
	draft.ID = session.EditingID
	draft.CreatedAt = time.Time{}
	draft.UpdatedAt = time.Time{}

	saved, err := s.payslips.Save(ctx, ownerID, draft)
	if err != nil {
		return Session{}, payslip.Payslip{}, err
	}

	session.setDraft(saved, OriginEdit, saved.ID)
	updated, err := s.put(ctx, *session)
	if err != nil {
		return Session{}, payslip.Payslip{}, err
	}
	return updated, saved, nil
}

func (s *service) SwitchView(ctx context.Context, ownerID, id string, view View) (Session, error) {
	if !view.Valid() {
		return Session{}, editorerrors.ErrInvalidView
	}
	session, err := s.load(ctx, ownerID, id)
	if err != nil {
		return Session{}, err
	}
	session.View = view
	return s.put(ctx, *session)
}

func (s *service) Close(ctx context.Context, ownerID, id string) error {
	if _, err := s.load(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return apperror.StorageUnavailable(err)
	}
	return nil
}

// load returns the session only to its owner. Other owners see it as missing.
func (s *service) load(ctx context.Context, ownerID, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if session.OwnerID != ownerID {
		return nil, editorerrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *service) put(ctx context.Context, session Session) (Session, error) {
	session.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, session); err != nil {
		return Session{}, apperror.StorageUnavailable(err)
	}
	return session, nil
}
