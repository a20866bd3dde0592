package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	calls []string
	note  string
}

func (h *recordingHandler) Accept() { h.calls = append(h.calls, "accept") }
func (h *recordingHandler) AcceptWithNote(note string) {
	h.calls = append(h.calls, "accept_with_note")
	h.note = note
}
func (h *recordingHandler) Refuse()    { h.calls = append(h.calls, "refuse") }
func (h *recordingHandler) Probation() { h.calls = append(h.calls, "probation") }

func TestNewVisitor_LowercasesName(t *testing.T) {
	v := NewVisitor("StEvE", Accept{}, 15)
	require.Equal(t, "steve", v.Name)
	require.Equal(t, int8(15), v.Age)
}

func TestDispatch_CallsMatchingCase(t *testing.T) {
	tests := []struct {
		action VisitorAction
		want   string
	}{
		{Accept{}, "accept"},
		{NewAcceptWithNote("milk"), "accept_with_note"},
		{Refuse{}, "refuse"},
		{Probation{}, "probation"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			h := &recordingHandler{}
			tt.action.Dispatch(h)
			require.Equal(t, []string{tt.want}, h.calls)
			require.Equal(t, ActionKind(tt.want), tt.action.Kind())
		})
	}
}

func TestDispatch_PassesNote(t *testing.T) {
	h := &recordingHandler{}
	NewAcceptWithNote("Lactose-free milk is in the fridge").Dispatch(h)
	require.Equal(t, "Lactose-free milk is in the fridge", h.note)
}

func TestParseAction(t *testing.T) {
	for _, kind := range []ActionKind{ActionAccept, ActionAcceptWithNote, ActionRefuse, ActionProbation} {
		action, err := ParseAction(kind, "note")
		require.NoError(t, err)
		require.Equal(t, kind, action.Kind())
	}

	action, err := ParseAction(ActionAcceptWithNote, "milk")
	require.NoError(t, err)
	require.Equal(t, "milk", NoteOf(action))
}

func TestParseAction_UnknownKind(t *testing.T) {
	_, err := ParseAction("invite_in", "")
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestNoteOf_EmptyForCasesWithoutNote(t *testing.T) {
	require.Empty(t, NoteOf(Accept{}))
	require.Empty(t, NoteOf(Refuse{}))
	require.Empty(t, NoteOf(Probation{}))
}
