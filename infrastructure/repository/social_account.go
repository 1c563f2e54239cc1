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

const socialAccountsTable = "social_accounts"

var socialAccountColumns = []string{
	"id", "user_id", "platform", "account_id", "name", "access_token",
	"refresh_token", "token_expires_at", "created_at", "updated_at",
}

type SocialAccountRepository interface {
	SaveSocialAccount(ctx context.Context, account *domain.SocialAccount) (*domain.SocialAccount, error)
	GetSocialAccount(ctx context.Context, userID, id string) (*domain.SocialAccount, error)
	ListSocialAccounts(ctx context.Context, userID string) ([]*domain.SocialAccount, error)
	ListSocialAccountsByIDs(ctx context.Context, userID string, ids []string) ([]*domain.SocialAccount, error)
	ListExpiringSocialAccounts(ctx context.Context, before time.Time) ([]*domain.SocialAccount, error)
	CountSocialAccounts(ctx context.Context, userID string) (int, error)
	UpdateTokens(ctx context.Context, id string, token *domain.OAuthToken, expiresAt *time.Time) error
	DeleteSocialAccount(ctx context.Context, userID, id string) error
}

type socialAccountRepository struct {
	conn *postgres.Connection
}

func NewSocialAccountRepository(conn *postgres.Connection) SocialAccountRepository {
	return &socialAccountRepository{
		conn: conn,
	}
}

// SaveSocialAccount insere a conta ou atualiza os tokens se ela já estiver conectada
func (r *socialAccountRepository) SaveSocialAccount(ctx context.Context, account *domain.SocialAccount) (*domain.SocialAccount, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(socialAccountsTable).
		Columns("id", "user_id", "platform", "account_id", "name", "access_token", "refresh_token", "token_expires_at").
		Values(
			account.ID,
			account.UserID,
			account.Platform,
			account.AccountID,
			account.Name,
			account.AccessToken,
			account.RefreshToken,
			account.TokenExpiresAt,
		).
		Suffix("ON CONFLICT (user_id, platform, account_id) DO UPDATE SET " +
			"name = EXCLUDED.name, access_token = EXCLUDED.access_token, " +
			"refresh_token = EXCLUDED.refresh_token, token_expires_at = EXCLUDED.token_expires_at, " +
			"updated_at = NOW() RETURNING " + joinColumns(socialAccountColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	saved, err := scanSocialAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar conta social")
	}

	return saved, nil
}

func (r *socialAccountRepository) GetSocialAccount(ctx context.Context, userID, id string) (*domain.SocialAccount, error) {
	query, args, err := squirrel.
		Select(socialAccountColumns...).
		From(socialAccountsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	account, err := scanSocialAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar conta social")
	}

	return account, nil
}

func (r *socialAccountRepository) ListSocialAccounts(ctx context.Context, userID string) ([]*domain.SocialAccount, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *socialAccountRepository) ListSocialAccountsByIDs(ctx context.Context, userID string, ids []string) ([]*domain.SocialAccount, error) {
	if len(ids) == 0 {
		return []*domain.SocialAccount{}, nil
	}

	return r.list(ctx, squirrel.Eq{"user_id": userID, "id": ids})
}

// ListExpiringSocialAccounts lista contas cujo token expira antes de before
func (r *socialAccountRepository) ListExpiringSocialAccounts(ctx context.Context, before time.Time) ([]*domain.SocialAccount, error) {
	return r.list(ctx, squirrel.And{
		squirrel.NotEq{"token_expires_at": nil},
		squirrel.Lt{"token_expires_at": before},
	})
}

func (r *socialAccountRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.SocialAccount, error) {
	query, args, err := squirrel.
		Select(socialAccountColumns...).
		From(socialAccountsTable).
		Where(where).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar contas sociais")
	}
	defer rows.Close()

	accounts := make([]*domain.SocialAccount, 0)
	for rows.Next() {
		account, err := scanSocialAccount(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao processar conta social")
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de contas sociais")
	}

	return accounts, nil
}

func (r *socialAccountRepository) CountSocialAccounts(ctx context.Context, userID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(socialAccountsTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "erro ao contar contas sociais")
	}

	return count, nil
}

func (r *socialAccountRepository) UpdateTokens(ctx context.Context, id string, token *domain.OAuthToken, expiresAt *time.Time) error {
	queryBuilder := squirrel.
		Update(socialAccountsTable).
		Set("access_token", token.AccessToken).
		Set("token_expires_at", expiresAt).
		Set("updated_at", now()).
		Where(squirrel.Eq{"id": id})

	if token.RefreshToken != "" {
		queryBuilder = queryBuilder.Set("refresh_token", token.RefreshToken)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar tokens da conta social")
	}

	return ensureAffected(result)
}

func (r *socialAccountRepository) DeleteSocialAccount(ctx context.Context, userID, id string) error {
	query, args, err := squirrel.
		Delete(socialAccountsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao remover conta social")
	}

	return ensureAffected(result)
}

func scanSocialAccount(row rowScanner) (*domain.SocialAccount, error) {
	var (
		account      domain.SocialAccount
		refreshToken sql.NullString
	)
	if err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Platform,
		&account.AccountID,
		&account.Name,
		&account.AccessToken,
		&refreshToken,
		&account.TokenExpiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	account.RefreshToken = refreshToken.String
	return &account, nil
}
