package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adcreative-api/infrastructure/database/postgres"
)

//go:embed sql/*.sql
var embedded embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

const createVersionTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// Status descreve uma migração e se ela já foi aplicada
type Status struct {
	Version   string
	Applied   bool
	AppliedAt *time.Time
}

type step struct {
	version string
	up      string
	down    string
}

type Migrator struct {
	conn  *postgres.Connection
	files fs.FS
}

func New(conn *postgres.Connection) *Migrator {
	sub, _ := fs.Sub(embedded, "sql")
	return &Migrator{conn: conn, files: sub}
}

// Up aplica, em ordem, todas as migrações pendentes
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	steps, err := m.steps()
	if err != nil {
		return nil, err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	var done []string
	for _, s := range steps {
		if _, ok := applied[s.version]; ok {
			continue
		}

		err := m.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, s.up); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", s.version)
			return err
		})
		if err != nil {
			return done, fmt.Errorf("erro ao aplicar migração %s: %w", s.version, err)
		}

		logrus.WithField("version", s.version).Info("Migração aplicada")
		done = append(done, s.version)
	}

	return done, nil
}

// Down reverte a última migração aplicada. Retorna vazio se não houver nenhuma.
func (m *Migrator) Down(ctx context.Context) (string, error) {
	steps, err := m.steps()
	if err != nil {
		return "", err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return "", err
	}

	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		if _, ok := applied[s.version]; !ok {
			continue
		}
		if s.down == "" {
			return "", fmt.Errorf("migração %s não possui arquivo de rollback", s.version)
		}

		err := m.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, s.down); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = $1", s.version)
			return err
		})
		if err != nil {
			return "", fmt.Errorf("erro ao reverter migração %s: %w", s.version, err)
		}

		logrus.WithField("version", s.version).Info("Migração revertida")
		return s.version, nil
	}

	return "", nil
}

func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	steps, err := m.steps()
	if err != nil {
		return nil, err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(steps))
	for _, s := range steps {
		st := Status{Version: s.version}
		if at, ok := applied[s.version]; ok {
			st.Applied = true
			st.AppliedAt = &at
		}
		statuses = append(statuses, st)
	}

	return statuses, nil
}

func (m *Migrator) applied(ctx context.Context) (map[string]time.Time, error) {
	if _, err := m.conn.ExecContext(ctx, createVersionTable); err != nil {
		return nil, fmt.Errorf("erro ao criar tabela de controle: %w", err)
	}

	rows, err := m.conn.QueryContext(ctx, "SELECT version, applied_at FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar migrações aplicadas: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]time.Time)
	for rows.Next() {
		var (
			version string
			at      time.Time
		)
		if err := rows.Scan(&version, &at); err != nil {
			return nil, err
		}
		applied[version] = at
	}

	return applied, rows.Err()
}

// steps agrupa os arquivos <versão>.up.sql e <versão>.down.sql, ordenados por versão
func (m *Migrator) steps() ([]step, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar migrações: %w", err)
	}

	byVersion := make(map[string]*step)
	for _, entry := range entries {
		name := entry.Name()

		var version string
		switch {
		case strings.HasSuffix(name, upSuffix):
			version = strings.TrimSuffix(name, upSuffix)
		case strings.HasSuffix(name, downSuffix):
			version = strings.TrimSuffix(name, downSuffix)
		default:
			continue
		}

		content, err := fs.ReadFile(m.files, name)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler migração %s: %w", name, err)
		}

		s, ok := byVersion[version]
		if !ok {
			s = &step{version: version}
			byVersion[version] = s
		}
		if strings.HasSuffix(name, upSuffix) {
			s.up = string(content)
		} else {
			s.down = string(content)
		}
	}

	steps := make([]step, 0, len(byVersion))
	for _, s := range byVersion {
		if s.up == "" {
			return nil, fmt.Errorf("migração %s não possui arquivo up", s.version)
		}
		steps = append(steps, *s)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].version < steps[j].version })

	return steps, nil
}
