package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/adcreative-api/infrastructure/database/postgres"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

const projectsTable = "projects"

var projectColumns = []string{
	"project_id", "user_id", "name", "description", "product_image_url",
	"target_platforms", "created_at", "updated_at",
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error)
	ListProjectsByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, userID, projectID string) error
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project.ProjectID == "" {
		project.ProjectID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(projectsTable).
		Columns(projectColumns...).
		Values(
			project.ProjectID,
			project.UserID,
			project.Name,
			project.Description,
			project.ProductImageURL,
			pq.Array(project.TargetPlatforms),
			project.CreatedAt,
			project.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "erro ao criar projeto")
	}

	if project.AdVariations == nil {
		project.AdVariations = []*domain.AdVariation{}
	}

	return project, nil
}

func (r *projectRepository) GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns...).
		From(projectsTable).
		Where(squirrel.Eq{"project_id": projectID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	project, err := scanProject(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar projeto")
	}

	variations, err := r.listVariations(ctx, []string{project.ProjectID})
	if err != nil {
		return nil, err
	}
	project.AdVariations = variations[project.ProjectID]
	if project.AdVariations == nil {
		project.AdVariations = []*domain.AdVariation{}
	}

	return project, nil
}

// ListProjectsByUser retorna os projetos com suas variações, mais recentes primeiro
func (r *projectRepository) ListProjectsByUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns...).
		From(projectsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar projetos")
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	ids := make([]string, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao processar projeto")
		}
		projects = append(projects, project)
		ids = append(ids, project.ProjectID)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de projetos")
	}

	if len(ids) == 0 {
		return projects, nil
	}

	variations, err := r.listVariations(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		project.AdVariations = variations[project.ProjectID]
		if project.AdVariations == nil {
			project.AdVariations = []*domain.AdVariation{}
		}
	}

	return projects, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	query, args, err := squirrel.
		Update(projectsTable).
		Set("name", project.Name).
		Set("description", project.Description).
		Set("product_image_url", project.ProductImageURL).
		Set("target_platforms", pq.Array(project.TargetPlatforms)).
		Set("updated_at", project.UpdatedAt).
		Where(squirrel.Eq{"project_id": project.ProjectID, "user_id": project.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar projeto")
	}

	if err := ensureAffected(result); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject remove o projeto. As variações são removidas em cascata.
func (r *projectRepository) DeleteProject(ctx context.Context, userID, projectID string) error {
	query, args, err := squirrel.
		Delete(projectsTable).
		Where(squirrel.Eq{"project_id": projectID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao remover projeto")
	}

	return ensureAffected(result)
}

func (r *projectRepository) listVariations(ctx context.Context, projectIDs []string) (map[string][]*domain.AdVariation, error) {
	query, args, err := squirrel.
		Select(adVariationColumns...).
		From(adVariationsTable).
		Where(squirrel.Eq{"project_id": projectIDs}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar variações")
	}
	defer rows.Close()

	byProject := make(map[string][]*domain.AdVariation)
	for rows.Next() {
		variation, err := scanAdVariation(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao processar variação")
		}
		byProject[variation.ProjectID] = append(byProject[variation.ProjectID], variation)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de variações")
	}

	return byProject, nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		project   domain.Project
		platforms pq.StringArray
	)
	if err := row.Scan(
		&project.ProjectID,
		&project.UserID,
		&project.Name,
		&project.Description,
		&project.ProductImageURL,
		&platforms,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		return nil, err
	}

	project.TargetPlatforms = []string(platforms)
	return &project, nil
}

func now() time.Time {
	return time.Now().UTC()
}
