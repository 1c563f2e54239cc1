package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

func TestSocialAccountRepository_SaveSocialAccount(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSocialAccountRepository(conn)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO social_accounts (.+) ON CONFLICT \(user_id, platform, account_id\) DO UPDATE`).
		WithArgs(sqlmock.AnyArg(), "user-1", "instagram", "ig_1", "Loja", "token", "", nil).
		WillReturnRows(sqlmock.NewRows(socialAccountColumns).
			AddRow("sa-1", "user-1", "instagram", "ig_1", "Loja", "token", nil, nil, now, now))

	account, err := repo.SaveSocialAccount(context.Background(), &domain.SocialAccount{
		UserID:      "user-1",
		Platform:    "instagram",
		AccountID:   "ig_1",
		Name:        "Loja",
		AccessToken: "token",
	})
	require.NoError(t, err)

	assert.Equal(t, "sa-1", account.ID)
	assert.Empty(t, account.RefreshToken)
	assert.Nil(t, account.TokenExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialAccountRepository_CountSocialAccounts(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSocialAccountRepository(conn)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM social_accounts WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountSocialAccounts(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialAccountRepository_ListSocialAccountsByIDs_EmptyIDs(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSocialAccountRepository(conn)

	accounts, err := repo.ListSocialAccountsByIDs(context.Background(), "user-1", nil)
	require.NoError(t, err)
	assert.Empty(t, accounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialAccountRepository_ListExpiringSocialAccounts(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSocialAccountRepository(conn)
	before := time.Now().Add(72 * time.Hour)
	expires := time.Now().Add(time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM social_accounts WHERE \(token_expires_at IS NOT NULL AND token_expires_at < \$1\)`).
		WithArgs(before).
		WillReturnRows(sqlmock.NewRows(socialAccountColumns).
			AddRow("sa-1", "user-1", "tiktok", "tt_1", "TT", "token", "refresh", expires, time.Now(), time.Now()))

	accounts, err := repo.ListExpiringSocialAccounts(context.Background(), before)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "refresh", accounts[0].RefreshToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialAccountRepository_DeleteSocialAccount_NotFound(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSocialAccountRepository(conn)

	mock.ExpectExec(`DELETE FROM social_accounts WHERE id = \$1 AND user_id = \$2`).
		WithArgs("sa-9", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteSocialAccount(context.Background(), "user-1", "sa-9")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
