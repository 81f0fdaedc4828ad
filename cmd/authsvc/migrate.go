package main

import (
	"context"

	"authsvc/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// The database start hook migrates when this is set.
			cfg.Migrations.AutoMigrate = true

			var db *gorm.DB
			app := fx.New(
				appOptions(cfg),
				fx.Populate(&db),
			)

			return runOnce(cmd.Context(), app)
		},
	}
}

// runOnce starts app, which runs every start hook, then stops it.
func runOnce(ctx context.Context, app *fx.App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start")
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()

	return errors.Wrap(app.Stop(stopCtx), "stop")
}
