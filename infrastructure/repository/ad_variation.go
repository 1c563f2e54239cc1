package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/adcreative-api/infrastructure/database/postgres"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

const adVariationsTable = "ad_variations"

var adVariationColumns = []string{
	"ad_variation_id", "project_id", "prompt", "generated_text", "generated_image_url",
	"platform", "style", "status", "performance_metrics", "posting_results",
	"posted_at", "created_at", "updated_at",
}

type AdVariationRepository interface {
	CreateAdVariation(ctx context.Context, variation *domain.AdVariation) (*domain.AdVariation, error)
	GetAdVariation(ctx context.Context, userID, variationID string) (*domain.AdVariation, error)
	MarkPosted(ctx context.Context, variationID string, postedAt time.Time, results domain.PostingResults) (*domain.AdVariation, error)
	UpdateMetrics(ctx context.Context, variationID string, metrics domain.PerformanceMetrics) (*domain.AdVariation, error)
	ListPostedSince(ctx context.Context, since time.Time) ([]*domain.PostedVariation, error)
}

type adVariationRepository struct {
	conn *postgres.Connection
}

func NewAdVariationRepository(conn *postgres.Connection) AdVariationRepository {
	return &adVariationRepository{
		conn: conn,
	}
}

func (r *adVariationRepository) CreateAdVariation(ctx context.Context, variation *domain.AdVariation) (*domain.AdVariation, error) {
	if variation.AdVariationID == "" {
		variation.AdVariationID = uuid.NewString()
	}

	if variation.UpdatedAt.IsZero() {
		variation.UpdatedAt = variation.CreatedAt
	}

	query, args, err := squirrel.
		Insert(adVariationsTable).
		Columns(adVariationColumns...).
		Values(
			variation.AdVariationID,
			variation.ProjectID,
			variation.Prompt,
			variation.GeneratedText,
			variation.GeneratedImageURL,
			variation.Platform,
			variation.Style,
			variation.Status,
			variation.PerformanceMetrics,
			variation.PostingResults,
			variation.PostedAt,
			variation.CreatedAt,
			variation.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "erro ao salvar variação")
	}

	return variation, nil
}

// GetAdVariation busca a variação garantindo que o projeto pertence ao usuário
func (r *adVariationRepository) GetAdVariation(ctx context.Context, userID, variationID string) (*domain.AdVariation, error) {
	columns := make([]string, len(adVariationColumns))
	for i, c := range adVariationColumns {
		columns[i] = "v." + c
	}

	query, args, err := squirrel.
		Select(columns...).
		From(adVariationsTable + " v").
		Join(projectsTable + " p ON p.project_id = v.project_id").
		Where(squirrel.Eq{"v.ad_variation_id": variationID, "p.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	variation, err := scanAdVariation(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar variação")
	}

	return variation, nil
}

func (r *adVariationRepository) MarkPosted(ctx context.Context, variationID string, postedAt time.Time, results domain.PostingResults) (*domain.AdVariation, error) {
	return r.update(ctx, variationID, squirrel.
		Update(adVariationsTable).
		Set("status", domain.AdVariationStatusPosted).
		Set("posted_at", postedAt).
		Set("posting_results", results).
		Set("updated_at", postedAt))
}

func (r *adVariationRepository) UpdateMetrics(ctx context.Context, variationID string, metrics domain.PerformanceMetrics) (*domain.AdVariation, error) {
	return r.update(ctx, variationID, squirrel.
		Update(adVariationsTable).
		Set("performance_metrics", metrics).
		Set("updated_at", now()))
}

func (r *adVariationRepository) update(ctx context.Context, variationID string, builder squirrel.UpdateBuilder) (*domain.AdVariation, error) {
	query, args, err := builder.
		Where(squirrel.Eq{"ad_variation_id": variationID}).
		Suffix("RETURNING " + joinColumns(adVariationColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	variation, err := scanAdVariation(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar variação")
	}

	return variation, nil
}

// ListPostedSince lista as variações publicadas a partir de since, com o dono do projeto
func (r *adVariationRepository) ListPostedSince(ctx context.Context, since time.Time) ([]*domain.PostedVariation, error) {
	query, args, err := squirrel.
		Select("v.ad_variation_id", "p.user_id", "v.posting_results", "v.posted_at").
		From(adVariationsTable + " v").
		Join(projectsTable + " p ON p.project_id = v.project_id").
		Where(squirrel.Eq{"v.status": domain.AdVariationStatusPosted}).
		Where(squirrel.GtOrEq{"v.posted_at": since}).
		OrderBy("v.posted_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar variações publicadas")
	}
	defer rows.Close()

	variations := make([]*domain.PostedVariation, 0)
	for rows.Next() {
		var v domain.PostedVariation
		if err := rows.Scan(&v.AdVariationID, &v.UserID, &v.PostingResults, &v.PostedAt); err != nil {
			return nil, errors.Wrap(err, "erro ao processar variação publicada")
		}
		variations = append(variations, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de variações publicadas")
	}

	return variations, nil
}

func scanAdVariation(row rowScanner) (*domain.AdVariation, error) {
	var variation domain.AdVariation
	if err := row.Scan(
		&variation.AdVariationID,
		&variation.ProjectID,
		&variation.Prompt,
		&variation.GeneratedText,
		&variation.GeneratedImageURL,
		&variation.Platform,
		&variation.Style,
		&variation.Status,
		&variation.PerformanceMetrics,
		&variation.PostingResults,
		&variation.PostedAt,
		&variation.CreatedAt,
		&variation.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &variation, nil
}
