package tree

import (
	"github.com/google/uuid"

	"treefs/internal/domain"
	"treefs/internal/services"
)

// Notifier receives human-readable failure reports for rename and create
// operations. How they are surfaced (status line, dialog, log) is the
// consumer's business.
type Notifier interface {
	Notify(op, path string, err error)
}

type NotifierFunc func(op, path string, err error)

func (fn NotifierFunc) Notify(op, path string, err error) {
	fn(op, path, err)
}

type EventType int

const (
	EventChildrenLoaded EventType = iota
	EventNodeRenamed
	EventNodeCreated
	EventOpFailed
)

type Event struct {
	Type EventType
	Node *domain.Node
	Err  *services.OpError
}

func (explorer *Explorer) SetNotifier(notifier Notifier) {
	explorer.notifier = notifier
}

// Subscribe registers an observer for tree events and returns a token for
// Unsubscribe. Observers run synchronously on the calling goroutine.
func (explorer *Explorer) Subscribe(fn func(Event)) string {
	token := uuid.NewString()
	explorer.observers[token] = fn
	return token
}

func (explorer *Explorer) Unsubscribe(token string) {
	delete(explorer.observers, token)
}

// OnEditRequest registers a handler for rename-interaction requests. The
// handler returns whether it accepted the request.
func (explorer *Explorer) OnEditRequest(fn func(*domain.Node) bool) string {
	token := uuid.NewString()
	explorer.editHandlers[token] = fn
	return token
}

func (explorer *Explorer) RemoveEditHandler(token string) {
	delete(explorer.editHandlers, token)
}

// RequestEdit asks registered handlers to begin a rename interaction for
// the node. Returns true as soon as one accepts, false when none do or
// none are registered.
func (explorer *Explorer) RequestEdit(node *domain.Node) bool {
	for _, handler := range explorer.editHandlers {
		if handler(node) {
			return true
		}
	}
	return false
}

func (explorer *Explorer) emit(event Event) {
	for _, observer := range explorer.observers {
		observer(event)
	}
}
