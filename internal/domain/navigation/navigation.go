// Package navigation tracks which detail records the user has open in the
// sidebar and which one is highlighted, kept in step with the current route.
package navigation

import (
	"fmt"
	"slices"
	"strings"
)

type Kind string

const (
	KindConversation Kind = "conversation"
	KindFeedback     Kind = "feedback"
)

var kinds = []Kind{KindConversation, KindFeedback}

func (k Kind) valid() bool {
	return slices.Contains(kinds, k)
}

// ListPath is the route of the kind's list view, e.g. "/conversation".
func (k Kind) ListPath() string {
	return "/" + string(k)
}

// State is the open-tab state of one record kind. OpenIDs is an ordered set.
type State struct {
	OpenIDs    []string `json:"openIds"`
	SelectedID *string  `json:"selectedId"`
}

func (s State) open(id string) State {
	ids := slices.Clone(s.OpenIDs)
	if !slices.Contains(ids, id) {
		ids = append(ids, id)
	}
	return State{OpenIDs: ids, SelectedID: &id}
}

func (s State) deselect() State {
	return State{OpenIDs: slices.Clone(s.OpenIDs)}
}

// Shell holds the state of every kind.
type Shell struct {
	Conversation State `json:"conversation"`
	Feedback     State `json:"feedback"`
}

func (sh Shell) get(k Kind) State {
	if k == KindFeedback {
		return sh.Feedback
	}
	return sh.Conversation
}

func (sh Shell) with(k Kind, s State) Shell {
	if k == KindFeedback {
		sh.Feedback = s
	} else {
		sh.Conversation = s
	}
	return sh
}

type EventType string

const (
	EventRouteChanged EventType = "routeChanged"
	EventSelect       EventType = "select"
	EventClose        EventType = "close"
)

// Event drives the reducer. RouteChanged uses Path; Select and Close use
// Kind and ID, and Close also reads Path as the current route.
type Event struct {
	Type EventType `json:"type"`
	Path string    `json:"path,omitempty"`
	Kind Kind      `json:"kind,omitempty"`
	ID   string    `json:"id,omitempty"`
}

// Result is the next state plus the route the client should move to, if any.
type Result struct {
	State    Shell  `json:"state"`
	Redirect string `json:"redirect,omitempty"`
}

// Reduce applies e to sh without modifying it.
func Reduce(sh Shell, e Event) (Result, error) {
	switch e.Type {
	case EventRouteChanged:
		return Result{State: routeChanged(sh, e.Path)}, nil

	case EventSelect, EventClose:
		if !e.Kind.valid() {
			return Result{}, fmt.Errorf("unknown record kind %q", e.Kind)
		}
		if e.ID == "" {
			return Result{}, fmt.Errorf("%s event requires an id", e.Type)
		}
		if e.Type == EventSelect {
			return Result{State: sh.with(e.Kind, sh.get(e.Kind).open(e.ID))}, nil
		}
		return closeTab(sh, e), nil

	default:
		return Result{}, fmt.Errorf("unknown event type %q", e.Type)
	}
}

// routeChanged opens and selects the record of a detail route and clears
// the selection of every other kind.
func routeChanged(sh Shell, path string) Shell {
	for _, k := range kinds {
		id, ok := detailID(k, path)
		if ok {
			sh = sh.with(k, sh.get(k).open(id))
		} else {
			sh = sh.with(k, sh.get(k).deselect())
		}
	}
	return sh
}

func detailID(k Kind, path string) (string, bool) {
	id, ok := strings.CutPrefix(path, k.ListPath()+"/")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func closeTab(sh Shell, e Event) Result {
	s := sh.get(e.Kind)
	next := State{
		OpenIDs:    slices.DeleteFunc(slices.Clone(s.OpenIDs), func(id string) bool { return id == e.ID }),
		SelectedID: s.SelectedID,
	}

	res := Result{}
	if s.SelectedID != nil && *s.SelectedID == e.ID {
		next.SelectedID = nil
		if id, ok := detailID(e.Kind, e.Path); ok && id == e.ID {
			res.Redirect = e.Kind.ListPath()
		}
	}
	res.State = sh.with(e.Kind, next)
	return res
}
