package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/adcreative-api/infrastructure/database/postgres"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{
	"user_id", "email", "full_name", "company", "avatar_url",
	"subscription_tier", "role", "created_at", "updated_at",
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, updates *domain.UpdateProfileRequest) (*domain.User, error)
	UpdateSubscriptionTier(ctx context.Context, userID, tier string) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.SubscriptionTier == "" {
		user.SubscriptionTier = "starter"
	}

	if user.Role == "" {
		user.Role = domain.RoleMember
	}

	query, args, err := squirrel.
		Insert(usersTable).
		Columns("user_id", "email", "full_name", "company", "avatar_url", "subscription_tier", "role").
		Values(
			user.UserID,
			user.Email,
			valueOrEmpty(user.FullName),
			valueOrEmpty(user.Company),
			valueOrEmpty(user.AvatarURL),
			user.SubscriptionTier,
			user.Role,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao criar perfil do usuário")
	}

	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar perfil do usuário")
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, userID string, updates *domain.UpdateProfileRequest) (*domain.User, error) {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("updated_at", now()).
		Where(squirrel.Eq{"user_id": userID})

	if updates.FullName != nil {
		queryBuilder = queryBuilder.Set("full_name", *updates.FullName)
	}

	if updates.Company != nil {
		queryBuilder = queryBuilder.Set("company", *updates.Company)
	}

	if updates.AvatarURL != nil {
		queryBuilder = queryBuilder.Set("avatar_url", *updates.AvatarURL)
	}

	query, args, err := queryBuilder.
		Suffix("RETURNING " + joinColumns(userColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar perfil do usuário")
	}

	return user, nil
}

func (r *userRepository) UpdateSubscriptionTier(ctx context.Context, userID, tier string) error {
	query, args, err := squirrel.
		Update(usersTable).
		Set("subscription_tier", tier).
		Set("updated_at", now()).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar plano do usuário")
	}

	return ensureAffected(result)
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.FullName,
		&user.Company,
		&user.AvatarURL,
		&user.SubscriptionTier,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}
