package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamboardhq/team_board_app/internal/apperrors"
	"github.com/teamboardhq/team_board_app/internal/core/domain"
	portsrepo "github.com/teamboardhq/team_board_app/internal/core/ports/repositories"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

// task_count is computed from the tasks table on every read.
var FULL_PROJECT_SELECT_QUERY = `
SELECT
	p.project_id, p.workspace_id, p.name, p.description, p.status, p.completion_rate,
	(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.project_id) AS task_count,
	p.member_count, p.deadline,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM projects p
`

func (r *PgxProjectRepository) getProjects(ctx context.Context, filterQuery string, args ...any) ([]domain.Project, error) {
	query := FULL_PROJECT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query projects", err)
	}
	defer rows.Close()
	projects, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Project{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect project rows", err)
	}
	return projects, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, workspaceID string) ([]domain.Project, error) {
	if workspaceID != "" {
		return r.getProjects(ctx, `WHERE p.workspace_id = $1 ORDER BY p.created_at, p.project_id`, workspaceID)
	}
	return r.getProjects(ctx, `ORDER BY p.created_at, p.project_id`)
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	projects, err := r.getProjects(ctx, `WHERE p.project_id = $1`, projectID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, apperrors.NewNotFoundError("Project not found")
	}
	return &projects[0], nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
		INSERT INTO projects (
			project_id, workspace_id, name, description, status, completion_rate,
			member_count, deadline, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		project.ProjectID,
		project.WorkspaceID,
		project.Name,
		project.Description,
		project.Status,
		project.CompletionRate,
		project.MemberCount,
		project.Deadline,
		project.CreatedAt,
		project.CreatedBy,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("project ID " + project.ProjectID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewNotFoundError("Workspace not found")
			}
		}
		return apperrors.NewAppError(500, "failed to save project "+project.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects
		SET workspace_id = $2, name = $3, description = $4, status = $5, completion_rate = $6,
			member_count = $7, deadline = $8, last_updated_at = $9, last_updated_by = $10
		WHERE project_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		project.ProjectID,
		project.WorkspaceID,
		project.Name,
		project.Description,
		project.Status,
		project.CompletionRate,
		project.MemberCount,
		project.Deadline,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewNotFoundError("Workspace not found")
		}
		return apperrors.NewAppError(500, "failed to update project "+project.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Project not found")
	}
	return nil
}

// DeleteProject removes the project; ON DELETE CASCADE removes its tasks.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete project "+projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Project not found")
	}
	return nil
}
