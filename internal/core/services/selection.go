package services

import "sync"

// SelectionTracker holds the current workspace and project selections on the
// server, mirroring the pointers the dashboard keeps client-side. Selections
// are reconciled against the live collections on every list call: a pointer
// to a deleted entity falls back to the first remaining one, or to nothing.
type SelectionTracker struct {
	mu          sync.Mutex
	workspaceID string
	projectID   string
}

// NewSelectionTracker creates an empty tracker.
func NewSelectionTracker() *SelectionTracker {
	return &SelectionTracker{}
}

// WorkspaceID returns the currently selected workspace id, or "".
func (t *SelectionTracker) WorkspaceID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.workspaceID
}

// SetWorkspaceID moves the workspace selection pointer.
func (t *SelectionTracker) SetWorkspaceID(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.workspaceID = id
}

// ProjectID returns the currently selected project id, or "".
func (t *SelectionTracker) ProjectID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.projectID
}

// SetProjectID moves the project selection pointer.
func (t *SelectionTracker) SetProjectID(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.projectID = id
}
