package repository

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/vfg2006/adcreative-api/infrastructure/repository AuthUserRepository,UserRepository,ProjectRepository,AdVariationRepository,SocialAccountRepository,SubscriptionRepository

import (
	"database/sql"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("registro não encontrado")

type rowScanner interface {
	Scan(dest ...any) error
}

// ensureAffected converte um UPDATE/DELETE sem linhas afetadas em ErrNotFound
func ensureAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// valueOrEmpty grava "" nas colunas TEXT NOT NULL quando o campo é opcional
func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
