// Package memory provides the in-memory store that simulates a remote
// backend: every call waits a randomized latency before it applies, writes
// cascade per the referential-integrity rules, and derived counts are fully
// recomputed after each mutation.
package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
)

// Options tunes the simulated latency window. A zero MaxLatency disables the
// delay entirely (tests).
type Options struct {
	LatencyMin time.Duration
	LatencyMax time.Duration
}

// Store holds the canonical collections behind ordered slices so "first
// remaining entity" semantics survive deletions. Mutations are applied
// atomically under the mutex in the order their latency timers resolve;
// reads return deep copies so callers can never reach internal state.
type Store struct {
	mu         sync.RWMutex
	latencyMin time.Duration
	latencyMax time.Duration

	workspaces []domain.Workspace
	projects   []domain.Project
	tasks      []domain.Task
	users      []domain.User
	roles      []domain.Role
}

// NewStore creates an empty store carrying the built-in role catalogue.
func NewStore(opts Options) *Store {
	return &Store{
		latencyMin: opts.LatencyMin,
		latencyMax: opts.LatencyMax,
		roles:      domain.DefaultRoles(),
	}
}

// NewRepositoryProvider exposes the store through the repository ports. The
// same store instance backs every facade.
func NewRepositoryProvider(s *Store) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		WorkspaceRepo: s,
		ProjectRepo:   s,
		TaskRepo:      s,
		UserRepo:      s,
		RoleRepo:      s,
	}
}

// Compile-time contract assertions.
var (
	_ portsrepo.WorkspaceRepositoryFacade = (*Store)(nil)
	_ portsrepo.ProjectRepositoryFacade   = (*Store)(nil)
	_ portsrepo.TaskRepositoryFacade      = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade      = (*Store)(nil)
	_ portsrepo.RoleRepositoryFacade      = (*Store)(nil)
)

// wait simulates remote latency before an operation is applied. The sleep
// happens outside the store lock so in-flight calls race only on completion
// order, exactly like independent network requests.
func (s *Store) wait(ctx context.Context) error {
	if s.latencyMax <= 0 {
		return nil
	}
	window := s.latencyMax - s.latencyMin
	delay := s.latencyMin
	if window > 0 {
		delay += time.Duration(rand.Int63n(int64(window) + 1))
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// recountLocked recomputes every derived count from the canonical child
// collections. No incremental bookkeeping: correctness over efficiency for
// dashboard-sized datasets. Callers must hold the write lock.
func (s *Store) recountLocked() {
	for i := range s.workspaces {
		n := 0
		for j := range s.projects {
			if s.projects[j].WorkspaceID == s.workspaces[i].WorkspaceID {
				n++
			}
		}
		s.workspaces[i].ProjectCount = n
	}
	for i := range s.projects {
		n := 0
		for j := range s.tasks {
			if s.tasks[j].ProjectID == s.projects[i].ProjectID {
				n++
			}
		}
		s.projects[i].TaskCount = n
	}
}

// --- deep-copy helpers ---

func cloneProject(p domain.Project) domain.Project {
	out := p
	if p.Deadline != nil {
		d := *p.Deadline
		out.Deadline = &d
	}
	return out
}

func cloneTask(t domain.Task) domain.Task {
	out := t
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.AssignedTo != nil {
		a := *t.AssignedTo
		out.AssignedTo = &a
	}
	return out
}

func cloneRole(r domain.Role) domain.Role {
	out := r
	out.Permissions = append([]domain.Permission(nil), r.Permissions...)
	return out
}
