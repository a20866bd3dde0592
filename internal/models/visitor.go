package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when an action kind cannot be parsed
var ErrUnknownAction = errors.New("unknown visitor action")

// ActionKind names the active case of a VisitorAction
type ActionKind string

const (
	ActionAccept         ActionKind = "accept"
	ActionAcceptWithNote ActionKind = "accept_with_note"
	ActionRefuse         ActionKind = "refuse"
	ActionProbation      ActionKind = "probation"
)

// ActionHandler has one method per VisitorAction case.
// Adding a case adds a method here, so every handler must be updated.
type ActionHandler interface {
	Accept()
	AcceptWithNote(note string)
	Refuse()
	Probation()
}

// VisitorAction is the greeting policy applied to a visitor.
// The set of implementations is closed to this package.
type VisitorAction interface {
	Kind() ActionKind
	Dispatch(h ActionHandler)
	sealed()
}

type Accept struct{}

func (Accept) Kind() ActionKind         { return ActionAccept }
func (Accept) Dispatch(h ActionHandler) { h.Accept() }
func (Accept) sealed()                  {}

// AcceptWithNote lets the visitor in and passes a note along
type AcceptWithNote struct {
	note string
}

// NewAcceptWithNote builds an AcceptWithNote action carrying note
func NewAcceptWithNote(note string) AcceptWithNote {
	return AcceptWithNote{note: note}
}

// Note returns the note text
func (a AcceptWithNote) Note() string             { return a.note }
func (AcceptWithNote) Kind() ActionKind           { return ActionAcceptWithNote }
func (a AcceptWithNote) Dispatch(h ActionHandler) { h.AcceptWithNote(a.note) }
func (AcceptWithNote) sealed()                    {}

type Refuse struct{}

func (Refuse) Kind() ActionKind         { return ActionRefuse }
func (Refuse) Dispatch(h ActionHandler) { h.Refuse() }
func (Refuse) sealed()                  {}

type Probation struct{}

func (Probation) Kind() ActionKind         { return ActionProbation }
func (Probation) Dispatch(h ActionHandler) { h.Probation() }
func (Probation) sealed()                  {}

// NoteOf returns the note carried by action, or "" for cases without one
func NoteOf(action VisitorAction) string {
	if a, ok := action.(AcceptWithNote); ok {
		return a.note
	}
	return ""
}

// ParseAction rebuilds an action from its kind and note
func ParseAction(kind ActionKind, note string) (VisitorAction, error) {
	switch kind {
	case ActionAccept:
		return Accept{}, nil
	case ActionAcceptWithNote:
		return NewAcceptWithNote(note), nil
	case ActionRefuse:
		return Refuse{}, nil
	case ActionProbation:
		return Probation{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, kind)
}

// Visitor represents someone knocking on the treehouse door
type Visitor struct {
	Name   string
	Action VisitorAction
	Age    int8
}

// NewVisitor creates a visitor; the name is stored lowercase
func NewVisitor(name string, action VisitorAction, age int8) Visitor {
	return Visitor{
		Name:   strings.ToLower(name),
		Action: action,
		Age:    age,
	}
}
