package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reduce(t *testing.T, sh Shell, e Event) Result {
	t.Helper()
	res, err := Reduce(sh, e)
	require.NoError(t, err)
	return res
}

func selected(s State) string {
	if s.SelectedID == nil {
		return ""
	}
	return *s.SelectedID
}

func TestRouteChanged_OpensDetailAndClearsOthers(t *testing.T) {
	sh := reduce(t, Shell{}, Event{Type: EventRouteChanged, Path: "/feedback/FB-001"}).State
	assert.Equal(t, []string{"FB-001"}, sh.Feedback.OpenIDs)
	assert.Equal(t, "FB-001", selected(sh.Feedback))

	sh = reduce(t, sh, Event{Type: EventRouteChanged, Path: "/conversation/C1"}).State
	assert.Equal(t, "C1", selected(sh.Conversation))
	assert.Nil(t, sh.Feedback.SelectedID, "leaving a feedback page clears its selection")
	assert.Equal(t, []string{"FB-001"}, sh.Feedback.OpenIDs, "tabs stay open")

	// revisiting does not duplicate
	sh = reduce(t, sh, Event{Type: EventRouteChanged, Path: "/conversation/C1"}).State
	assert.Equal(t, []string{"C1"}, sh.Conversation.OpenIDs)

	sh = reduce(t, sh, Event{Type: EventRouteChanged, Path: "/conversation"}).State
	assert.Nil(t, sh.Conversation.SelectedID)
	assert.Equal(t, []string{"C1"}, sh.Conversation.OpenIDs)
}

func TestSelect(t *testing.T) {
	sh := reduce(t, Shell{}, Event{Type: EventSelect, Kind: KindConversation, ID: "C1"}).State
	sh = reduce(t, sh, Event{Type: EventSelect, Kind: KindConversation, ID: "C2"}).State
	sh = reduce(t, sh, Event{Type: EventSelect, Kind: KindConversation, ID: "C1"}).State

	assert.Equal(t, []string{"C1", "C2"}, sh.Conversation.OpenIDs)
	assert.Equal(t, "C1", selected(sh.Conversation))
	assert.Empty(t, sh.Feedback.OpenIDs)
}

func TestClose(t *testing.T) {
	sh := reduce(t, Shell{}, Event{Type: EventSelect, Kind: KindFeedback, ID: "F1"}).State
	sh = reduce(t, sh, Event{Type: EventSelect, Kind: KindFeedback, ID: "F2"}).State

	// closing a background tab keeps the selection
	res := reduce(t, sh, Event{Type: EventClose, Kind: KindFeedback, ID: "F1", Path: "/feedback/F2"})
	assert.Equal(t, []string{"F2"}, res.State.Feedback.OpenIDs)
	assert.Equal(t, "F2", selected(res.State.Feedback))
	assert.Empty(t, res.Redirect)

	// closing the tab being viewed goes back to the list
	res = reduce(t, res.State, Event{Type: EventClose, Kind: KindFeedback, ID: "F2", Path: "/feedback/F2"})
	assert.Empty(t, res.State.Feedback.OpenIDs)
	assert.Nil(t, res.State.Feedback.SelectedID)
	assert.Equal(t, "/feedback", res.Redirect)
}

func TestClose_SelectedOutsideDetailPage(t *testing.T) {
	sh := reduce(t, Shell{}, Event{Type: EventSelect, Kind: KindConversation, ID: "C1"}).State
	res := reduce(t, sh, Event{Type: EventClose, Kind: KindConversation, ID: "C1", Path: "/"})
	assert.Nil(t, res.State.Conversation.SelectedID)
	assert.Empty(t, res.Redirect)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	id := "C1"
	sh := Shell{Conversation: State{OpenIDs: []string{"C1", "C2"}, SelectedID: &id}}

	_ = reduce(t, sh, Event{Type: EventClose, Kind: KindConversation, ID: "C1"})
	_ = reduce(t, sh, Event{Type: EventSelect, Kind: KindConversation, ID: "C3"})

	assert.Equal(t, []string{"C1", "C2"}, sh.Conversation.OpenIDs)
	assert.Equal(t, "C1", *sh.Conversation.SelectedID)
}

func TestReduce_InvalidEvents(t *testing.T) {
	tests := []Event{
		{Type: "teleport"},
		{Type: EventSelect, Kind: "ticket", ID: "T1"},
		{Type: EventClose, Kind: KindFeedback},
	}
	for _, e := range tests {
		_, err := Reduce(Shell{}, e)
		assert.Error(t, err, e)
	}
}
