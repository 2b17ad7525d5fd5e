package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or inspect finance-tracker database migrations",
		SilenceUsage: true,
	}
	root.AddCommand(newUpCmd(), newDownCmd(), newVersionCmd())
	return root
}

func openMigrator() (*migrate.Migrate, error) {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}
	return storage.NewMigrator(env.PostgresURL())
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := config.ProcessEnvironmentVariables()
			if err != nil {
				return fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
			}
			return storage.RunMigrations(env.PostgresURL(), logrus.StandardLogger())
		},
	}
}

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations, one step unless steps is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}

			m, err := openMigrator()
			if err != nil {
				return err
			}
			defer m.Close()

			if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return err
			}
			return printVersion(cmd, m)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := openMigrator()
			if err != nil {
				return err
			}
			defer m.Close()
			return printVersion(cmd, m)
		},
	}
}

func printVersion(cmd *cobra.Command, m *migrate.Migrate) error {
	version, dirty, err := storage.Version(m)
	if err != nil {
		return err
	}
	cmd.Printf("version=%d dirty=%t\n", version, dirty)
	return nil
}
