package core

// EventType represents the type of change in the reference tree.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored record, as observed by a watcher.
type Event struct {
	Type      EventType
	Path      string // tree-relative path of the changed file
	Timestamp int64  // Unix timestamp
}
