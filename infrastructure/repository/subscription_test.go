package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

func subscriptionRow(customerID any, start, end time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(subscriptionColumns).
		AddRow("s-1", "user-1", "pro", domain.SubscriptionStatusCanceled, "sub_1", customerID, 12, start, end, start, end)
}

func TestSubscriptionRepository_SaveSubscription(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	external := "sub_1"
	customer := "cus_1"

	t.Run("Campos opcionais nil ficam fora do insert e do update", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewSubscriptionRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta(
			"INSERT INTO subscriptions (subscription_id,user_id,plan_id,status,external_subscription_id) " +
				"VALUES ($1,$2,$3,$4,$5) ON CONFLICT (user_id) DO UPDATE SET " +
				"plan_id = EXCLUDED.plan_id, status = EXCLUDED.status, " +
				"external_subscription_id = EXCLUDED.external_subscription_id, updated_at = NOW() RETURNING")).
			WithArgs("s-1", "user-1", "pro", domain.SubscriptionStatusCanceled, "sub_1").
			WillReturnRows(subscriptionRow("cus_1", start, end))

		saved, err := repo.SaveSubscription(context.Background(), &domain.Subscription{
			SubscriptionID:         "s-1",
			UserID:                 "user-1",
			PlanID:                 "pro",
			Status:                 domain.SubscriptionStatusCanceled,
			ExternalSubscriptionID: &external,
		})
		require.NoError(t, err)
		require.NotNil(t, saved.CustomerID)
		assert.Equal(t, "cus_1", *saved.CustomerID)
		assert.Equal(t, 12, saved.AdGenerationsUsed)
		assert.True(t, start.Equal(*saved.CurrentPeriodStart))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Todos os campos informados", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewSubscriptionRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta(
			"INSERT INTO subscriptions (subscription_id,user_id,plan_id,status,external_subscription_id," +
				"customer_id,current_period_start,current_period_end) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) " +
				"ON CONFLICT (user_id) DO UPDATE SET plan_id = EXCLUDED.plan_id, status = EXCLUDED.status, " +
				"external_subscription_id = EXCLUDED.external_subscription_id, customer_id = EXCLUDED.customer_id, " +
				"current_period_start = EXCLUDED.current_period_start, current_period_end = EXCLUDED.current_period_end, " +
				"updated_at = NOW() RETURNING")).
			WithArgs("s-1", "user-1", "pro", domain.SubscriptionStatusActive, "sub_1", "cus_1", start, end).
			WillReturnRows(subscriptionRow("cus_1", start, end))

		_, err := repo.SaveSubscription(context.Background(), &domain.Subscription{
			SubscriptionID:         "s-1",
			UserID:                 "user-1",
			PlanID:                 "pro",
			Status:                 domain.SubscriptionStatusActive,
			ExternalSubscriptionID: &external,
			CustomerID:             &customer,
			CurrentPeriodStart:     &start,
			CurrentPeriodEnd:       &end,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Gera id quando vazio", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewSubscriptionRepository(conn)
		subscription := &domain.Subscription{UserID: "user-1", PlanID: "starter", Status: domain.SubscriptionStatusActive}

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subscriptions (subscription_id,user_id,plan_id,status) VALUES ($1,$2,$3,$4)")).
			WithArgs(sqlmock.AnyArg(), "user-1", "starter", domain.SubscriptionStatusActive).
			WillReturnRows(subscriptionRow("", start, end))

		saved, err := repo.SaveSubscription(context.Background(), subscription)
		require.NoError(t, err)
		assert.NotEmpty(t, subscription.SubscriptionID)
		assert.Equal(t, "", *saved.CustomerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubscriptionRepository_GetSubscriptionByUser_NotFound(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSubscriptionRepository(conn)

	mock.ExpectQuery(`SELECT (.+) FROM subscriptions WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(subscriptionColumns))

	subscription, err := repo.GetSubscriptionByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, subscription)
	assert.NoError(t, mock.ExpectationsWereMet())
}
