package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/adcreative-api/infrastructure/database/postgres"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const authUsersTable = "auth_users"

var authUserColumns = []string{"id", "email", "password_hash", "user_metadata", "created_at"}

type AuthUserRepository interface {
	CreateAuthUser(ctx context.Context, user *domain.AuthUser) (*domain.AuthUser, error)
	GetAuthUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error)
	GetAuthUserByID(ctx context.Context, id string) (*domain.AuthUser, error)
}

type authUserRepository struct {
	conn *postgres.Connection
}

func NewAuthUserRepository(conn *postgres.Connection) AuthUserRepository {
	return &authUserRepository{
		conn: conn,
	}
}

func (r *authUserRepository) CreateAuthUser(ctx context.Context, user *domain.AuthUser) (*domain.AuthUser, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	metadata, err := json.Marshal(user.UserMetadata)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar metadados do usuário")
	}

	query, args, err := squirrel.
		Insert(authUsersTable).
		Columns("id", "email", "password_hash", "user_metadata").
		Values(user.ID, user.Email, user.PasswordHash, metadata).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao criar usuário de autenticação")
	}

	return user, nil
}

func (r *authUserRepository) GetAuthUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	return r.getAuthUser(ctx, squirrel.Eq{"email": email})
}

func (r *authUserRepository) GetAuthUserByID(ctx context.Context, id string) (*domain.AuthUser, error) {
	return r.getAuthUser(ctx, squirrel.Eq{"id": id})
}

func (r *authUserRepository) getAuthUser(ctx context.Context, where squirrel.Eq) (*domain.AuthUser, error) {
	query, args, err := squirrel.
		Select(authUserColumns...).
		From(authUsersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		user     domain.AuthUser
		metadata []byte
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&metadata,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuário de autenticação")
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &user.UserMetadata); err != nil {
			return nil, errors.Wrap(err, "erro ao ler metadados do usuário")
		}
	}

	return &user, nil
}
