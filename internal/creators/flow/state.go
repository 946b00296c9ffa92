// Package flow models the add/edit/delete forms and the list and detail views
// as explicit state. Reducers are pure; Driver performs the remote calls.
package flow

import (
	"errors"
	"maps"

	"creatorverse/internal/creators/validator"
	apperrors "creatorverse/pkg/errors"
	"creatorverse/pkg/model"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

type Phase int

const (
	Editing Phase = iota
	Submitting
	Success
	Failed
	Deleting
	Deleted
)

func (p Phase) String() string {
	switch p {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	case Deleting:
		return "deleting"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

const (
	NoticeAdded   = "Creator added successfully!"
	NoticeUpdated = "Creator updated successfully!"
	NoticeDeleted = "Creator has been deleted."

	HomePath = "/"
)

// State belongs to one open form. Reducers never mutate their input.
type State struct {
	Mode     Mode
	ID       string
	Phase    Phase
	Draft    model.Creator
	Errors   validator.FieldErrors
	Notice   string
	Redirect string
}

type Validator interface {
	Validate(c *model.Creator) validator.FieldErrors
}

func NewCreate() State {
	return State{Mode: ModeCreate, Phase: Editing, Errors: validator.FieldErrors{}}
}

// NewEdit pre-fills the draft from the stored record.
func NewEdit(c *model.Creator) State {
	return State{
		Mode:   ModeEdit,
		ID:     c.ID,
		Phase:  Editing,
		Draft:  *c,
		Errors: validator.FieldErrors{},
	}
}

func (s State) busy() bool {
	return s.Phase == Submitting || s.Phase == Deleting
}

func (s State) finished() bool {
	return s.Phase == Success || s.Phase == Deleted
}

func (s State) clone() State {
	s.Errors = maps.Clone(s.Errors)
	if s.Errors == nil {
		s.Errors = validator.FieldErrors{}
	}
	return s
}

// OnFieldChange edits one draft field by its JSON name and clears only that
// field's error. A failed form returns to editing.
func OnFieldChange(s State, field, value string) State {
	if s.busy() || s.finished() {
		return s
	}
	next := s.clone()
	if !setField(&next.Draft, field, value) {
		return s
	}
	delete(next.Errors, field)
	if next.Phase == Failed {
		next.Phase = Editing
		next.Notice = ""
	}
	return next
}

func setField(c *model.Creator, field, value string) bool {
	switch field {
	case "name":
		c.Name = value
	case "url":
		c.URL = value
	case "description":
		c.Description = value
	case "imageURL":
		c.ImageURL = value
	default:
		p, ok := model.ParsePlatform(field)
		if !ok {
			return false
		}
		c.SetHandle(p, value)
	}
	return true
}

// OnSubmit validates the draft. proceed is true only when the caller should
// issue the remote write; a second submit while one is in flight is a no-op.
func OnSubmit(s State, v Validator) (next State, proceed bool) {
	if s.busy() || s.finished() {
		return s, false
	}

	next = s.clone()
	next.Notice = ""
	draft := next.Draft
	if errs := v.Validate(&draft); len(errs) > 0 {
		next.Phase = Editing
		next.Errors = errs
		return next, false
	}

	next.Phase = Submitting
	next.Errors = validator.FieldErrors{}
	return next, true
}

func OnSubmitResult(s State, saved *model.Creator, err error) State {
	if s.Phase != Submitting {
		return s
	}
	next := s.clone()

	if err != nil {
		next.Phase = Failed
		next.Notice = "Error: " + errorMessage(err)
		if fields := fieldErrors(err); len(fields) > 0 {
			next.Errors = validator.FieldErrors(fields)
		}
		return next
	}

	if saved != nil {
		next.Draft = *saved
		if saved.ID != "" {
			next.ID = saved.ID
		}
	}
	next.Phase = Success
	if next.Mode == ModeCreate {
		next.Notice = NoticeAdded
		next.Redirect = HomePath
	} else {
		next.Notice = NoticeUpdated
		next.Redirect = HomePath + next.ID
	}
	return next
}

// OnDelete starts a delete only for an existing record and an explicit confirmation.
func OnDelete(s State, confirmed bool) (next State, proceed bool) {
	if !confirmed || s.Mode != ModeEdit || s.ID == "" || s.busy() || s.finished() {
		return s, false
	}
	next = s.clone()
	next.Phase = Deleting
	next.Notice = ""
	return next, true
}

func OnDeleteResult(s State, err error) State {
	if s.Phase != Deleting {
		return s
	}
	next := s.clone()

	if err != nil {
		next.Phase = Failed
		next.Notice = "Error: " + errorMessage(err)
		next.Redirect = ""
		return next
	}

	next.Phase = Deleted
	next.Notice = NoticeDeleted
	next.Redirect = HomePath
	return next
}

// fieldErrorer is implemented by *apperrors.AppError and *client.APIError.
type fieldErrorer interface {
	FieldErrors() map[string]string
}

// fieldErrors extracts the per-field messages of a store-side validation failure.
func fieldErrors(err error) map[string]string {
	var fe fieldErrorer
	if errors.As(err, &fe) {
		return fe.FieldErrors()
	}
	return nil
}

func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
