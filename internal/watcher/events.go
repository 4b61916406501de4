package watcher

import (
	"path/filepath"
	"time"
)

type EventType int

const (
	EventCreate EventType = iota
	EventModify
	EventDelete
	EventRename
)

func (e EventType) String() string {
	switch e {
	case EventCreate:
		return "create"
	case EventModify:
		return "modify"
	case EventDelete:
		return "delete"
	case EventRename:
		return "rename"
	default:
		return "unknown"
	}
}

type FileEvent struct {
	Path      string
	Type      EventType
	Timestamp time.Time
}

// SourceFilter decides which flushed events warrant a regeneration. Only Go
// source changes can alter the view set.
type SourceFilter struct{}

func NewSourceFilter() *SourceFilter {
	return &SourceFilter{}
}

func (f *SourceFilter) Relevant(event FileEvent) bool {
	return filepath.Ext(event.Path) == ".go"
}

// FilterBatch keeps the events that can affect the generated route table.
func (f *SourceFilter) FilterBatch(events []FileEvent) []FileEvent {
	var kept []FileEvent
	for _, event := range events {
		if f.Relevant(event) {
			kept = append(kept, event)
		}
	}
	return kept
}
