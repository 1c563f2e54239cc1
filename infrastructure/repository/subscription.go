package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/adcreative-api/infrastructure/database/postgres"
	"github.com/vfg2006/adcreative-api/internal/domain"
)

const subscriptionsTable = "subscriptions"

var subscriptionColumns = []string{
	"subscription_id", "user_id", "plan_id", "status", "external_subscription_id",
	"customer_id", "ad_generations_used", "current_period_start", "current_period_end",
	"created_at", "updated_at",
}

type SubscriptionRepository interface {
	GetSubscriptionByUser(ctx context.Context, userID string) (*domain.Subscription, error)
	SaveSubscription(ctx context.Context, subscription *domain.Subscription) (*domain.Subscription, error)
	IncrementAdGenerations(ctx context.Context, userID string, amount int) error
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

func (r *subscriptionRepository) GetSubscriptionByUser(ctx context.Context, userID string) (*domain.Subscription, error) {
	query, args, err := squirrel.
		Select(subscriptionColumns...).
		From(subscriptionsTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	subscription, err := scanSubscription(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar assinatura")
	}

	return subscription, nil
}

// SaveSubscription mantém uma assinatura por usuário. Campos opcionais nil
// ficam com o default da tabela no insert e com o valor atual no update.
func (r *subscriptionRepository) SaveSubscription(ctx context.Context, subscription *domain.Subscription) (*domain.Subscription, error) {
	if subscription.SubscriptionID == "" {
		subscription.SubscriptionID = uuid.NewString()
	}

	columns := []string{"subscription_id", "user_id", "plan_id", "status"}
	values := []any{subscription.SubscriptionID, subscription.UserID, subscription.PlanID, subscription.Status}
	updates := []string{"plan_id = EXCLUDED.plan_id", "status = EXCLUDED.status"}

	optional := func(column string, value any) {
		columns = append(columns, column)
		values = append(values, value)
		updates = append(updates, column+" = EXCLUDED."+column)
	}

	if subscription.ExternalSubscriptionID != nil {
		optional("external_subscription_id", *subscription.ExternalSubscriptionID)
	}
	if subscription.CustomerID != nil {
		optional("customer_id", *subscription.CustomerID)
	}
	if subscription.CurrentPeriodStart != nil {
		optional("current_period_start", *subscription.CurrentPeriodStart)
	}
	if subscription.CurrentPeriodEnd != nil {
		optional("current_period_end", *subscription.CurrentPeriodEnd)
	}

	updates = append(updates, "updated_at = NOW()")

	query, args, err := squirrel.
		Insert(subscriptionsTable).
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " + joinColumns(updates) +
			" RETURNING " + joinColumns(subscriptionColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	saved, err := scanSubscription(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar assinatura")
	}

	return saved, nil
}

func (r *subscriptionRepository) IncrementAdGenerations(ctx context.Context, userID string, amount int) error {
	query, args, err := squirrel.
		Update(subscriptionsTable).
		Set("ad_generations_used", squirrel.Expr("ad_generations_used + ?", amount)).
		Set("updated_at", now()).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao incrementar uso de gerações")
	}

	return nil
}

func scanSubscription(row rowScanner) (*domain.Subscription, error) {
	var subscription domain.Subscription
	if err := row.Scan(
		&subscription.SubscriptionID,
		&subscription.UserID,
		&subscription.PlanID,
		&subscription.Status,
		&subscription.ExternalSubscriptionID,
		&subscription.CustomerID,
		&subscription.AdGenerationsUsed,
		&subscription.CurrentPeriodStart,
		&subscription.CurrentPeriodEnd,
		&subscription.CreatedAt,
		&subscription.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &subscription, nil
}
