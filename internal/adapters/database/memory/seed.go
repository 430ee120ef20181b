package memory

import (
	"time"

	"github.com/teamboardhq/team_board_app/internal/core/domain"
	"github.com/teamboardhq/team_board_app/internal/utils"
)

// SeedData is a complete fixture the store can be loaded with.
type SeedData struct {
	Workspaces []domain.Workspace
	Projects   []domain.Project
	Tasks      []domain.Task
	Users      []domain.User
}

// Seed replaces the store's collections with the fixture and recomputes the
// derived counts from scratch, so fixture counts never need to be accurate.
func (s *Store) Seed(data SeedData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaces = append([]domain.Workspace(nil), data.Workspaces...)
	s.projects = make([]domain.Project, 0, len(data.Projects))
	for _, p := range data.Projects {
		s.projects = append(s.projects, cloneProject(p))
	}
	s.tasks = make([]domain.Task, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		s.tasks = append(s.tasks, cloneTask(t))
	}
	s.users = append([]domain.User(nil), data.Users...)
	s.recountLocked()
}

// SampleData returns the demo fixture: two workspaces, three projects, five
// tasks and three team members. Every seeded member signs in with the
// password "password123".
func SampleData() (SeedData, error) {
	hash, err := utils.HashPassword("password123")
	if err != nil {
		return SeedData{}, err
	}
	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	return SeedData{
		Workspaces: []domain.Workspace{
			{WorkspaceID: "1", Name: "My Company", Description: "Main workspace for company projects", MemberCount: 5, AuditFields: audit},
			{WorkspaceID: "2", Name: "Personal Projects", Description: "Personal side projects and experiments", MemberCount: 1, AuditFields: audit},
		},
		Projects: []domain.Project{
			{ProjectID: "1", WorkspaceID: "1", Name: "Website Redesign", Description: "Complete redesign of company website", Status: domain.ProjectInProgress, CompletionRate: 45, MemberCount: 3, Deadline: date(2025, time.December, 31), AuditFields: audit},
			{ProjectID: "2", WorkspaceID: "1", Name: "Mobile App Development", Description: "New mobile application for customers", Status: domain.ProjectInProgress, CompletionRate: 25, MemberCount: 4, Deadline: date(2026, time.March, 31), AuditFields: audit},
			{ProjectID: "3", WorkspaceID: "2", Name: "Personal Blog", Description: "Build a personal blog with React", Status: domain.ProjectNotStarted, CompletionRate: 0, MemberCount: 1, Deadline: date(2025, time.June, 30), AuditFields: audit},
		},
		Tasks: []domain.Task{
			{TaskID: "1", ProjectID: "1", Title: "Design homepage mockup", Description: "Create wireframes and mockups for the new homepage", Status: domain.TaskCompleted, Priority: domain.PriorityHigh, DueDate: date(2025, time.November, 15), AuditFields: audit},
			{TaskID: "2", ProjectID: "1", Title: "Implement navigation menu", Description: "Code the responsive navigation menu", Status: domain.TaskInProgress, Priority: domain.PriorityHigh, DueDate: date(2025, time.November, 20), AuditFields: audit},
			{TaskID: "3", ProjectID: "1", Title: "Set up footer section", Description: "Create and style the footer with links", Status: domain.TaskPending, Priority: domain.PriorityMedium, DueDate: date(2025, time.November, 25), AuditFields: audit},
			{TaskID: "4", ProjectID: "2", Title: "Setup React Native project", Description: "Initialize and configure the mobile app project", Status: domain.TaskCompleted, Priority: domain.PriorityHigh, DueDate: date(2025, time.November, 10), AuditFields: audit},
			{TaskID: "5", ProjectID: "2", Title: "Design app screens", Description: "Create UI designs for all app screens", Status: domain.TaskInProgress, Priority: domain.PriorityHigh, DueDate: date(2025, time.November, 30), AuditFields: audit},
		},
		Users: []domain.User{
			{UserID: "1", Name: "Alex Johnson", Email: "alex@example.com", RoleID: domain.RoleAdmin, AvatarColor: "bg-blue-500", PasswordHash: hash, AuthProvider: domain.ProviderLocal, AuditFields: audit},
			{UserID: "2", Name: "Maria Gomez", Email: "maria@example.com", RoleID: domain.RoleManager, AvatarColor: "bg-pink-500", PasswordHash: hash, AuthProvider: domain.ProviderLocal, AuditFields: audit},
			{UserID: "3", Name: "Lee Wong", Email: "lee@example.com", RoleID: domain.RoleContributor, AvatarColor: "bg-green-500", PasswordHash: hash, AuthProvider: domain.ProviderLocal, AuditFields: audit},
		},
	}, nil
}
