package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/adcreative-api/infrastructure/database/postgres"
	"github.com/vfg2006/adcreative-api/infrastructure/migration"
	"github.com/vfg2006/adcreative-api/internal/config"
	"github.com/vfg2006/adcreative-api/pkg/log"
)

var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Gerencia o schema do banco do adcreative-api",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "tempo máximo de execução")

	rootCmd.AddCommand(newUpCmd())
	rootCmd.AddCommand(newDownCmd())
	rootCmd.AddCommand(newStatusCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Erro ao executar migração")
		os.Exit(1)
	}
}

// withMigrator abre a conexão com o banco e entrega o migrator ao comando
func withMigrator(fn func(ctx context.Context, m *migration.Migrator) error) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	defer conn.Close()

	return fn(ctx, migration.New(conn))
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Aplica as migrações pendentes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *migration.Migrator) error {
				done, err := m.Up(ctx)
				if err != nil {
					return err
				}
				if len(done) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma migração pendente")
					return nil
				}
				for _, version := range done {
					fmt.Fprintf(cmd.OutOrStdout(), "aplicada: %s\n", version)
				}
				return nil
			})
		},
	}
}

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Reverte a última migração aplicada",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *migration.Migrator) error {
				version, err := m.Down(ctx)
				if err != nil {
					return err
				}
				if version == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma migração para reverter")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "revertida: %s\n", version)
				return nil
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Lista as migrações e seu estado",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *migration.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}
				for _, s := range statuses {
					state := "pendente"
					if s.Applied {
						state = "aplicada em " + s.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", s.Version, state)
				}
				return nil
			})
		},
	}
}
