package main

import (
	"context"
	"fmt"
	"io"

	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/lifecycle"
	"authsvc/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const (
	flagAccountID = "account-id"
	flagRole      = "role"
)

func newRoleCmd() *cobra.Command {
	roleCmd := &cobra.Command{
		Use:   "role",
		Short: "Manage account role memberships",
	}

	grant := &cobra.Command{
		Use:   "grant",
		Short: "Grant a role to an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRoleAdmin(cmd, grantRole)
		},
	}

	revoke := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a role from an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRoleAdmin(cmd, revokeRole)
		},
	}

	for _, sub := range []*cobra.Command{grant, revoke} {
		sub.Flags().Uint64(flagAccountID, 0, "account id")
		sub.Flags().String(flagRole, entity.RoleAdmin.String(), "role name")
		_ = sub.MarkFlagRequired(flagAccountID)
		roleCmd.AddCommand(sub)
	}

	return roleCmd
}

type roleAction func(ctx context.Context, out io.Writer, roles usecase.RoleAdminUsecase, accountID uint64, role entity.Role) error

func grantRole(ctx context.Context, out io.Writer, roles usecase.RoleAdminUsecase, accountID uint64, role entity.Role) error {
	if err := roles.GrantRole(ctx, accountID, role); err != nil {
		return errors.Wrapf(err, "grant %s to account %d", role, accountID)
	}
	fmt.Fprintf(out, "granted %s to account %d\n", role, accountID)

	return nil
}

func revokeRole(ctx context.Context, out io.Writer, roles usecase.RoleAdminUsecase, accountID uint64, role entity.Role) error {
	removed, err := roles.RevokeRole(ctx, accountID, role)
	if err != nil {
		return errors.Wrapf(err, "revoke %s from account %d", role, accountID)
	}
	fmt.Fprintf(out, "revoked %s from account %d (%d removed)\n", role, accountID, removed)

	return nil
}

// withRoleAdmin starts just enough of the graph to reach the database, runs action, then
// stops the app.
func withRoleAdmin(cmd *cobra.Command, action roleAction) error {
	accountID, err := cmd.Flags().GetUint64(flagAccountID)
	if err != nil {
		return errors.WithStack(err)
	}
	roleName, err := cmd.Flags().GetString(flagRole)
	if err != nil {
		return errors.WithStack(err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var roles usecase.RoleAdminUsecase
	app := fx.New(
		appOptions(cfg),
		fx.Populate(&roles),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start")
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		_ = app.Stop(stopCtx)
	}()

	return action(ctx, cmd.OutOrStdout(), roles, accountID, entity.Role(roleName))
}
