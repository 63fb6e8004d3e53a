package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cohort_lms/internal/middleware"
	"cohort_lms/internal/model"
	"cohort_lms/internal/repository"
	"cohort_lms/internal/service"
)

var setRoleCmd = &cobra.Command{
	Use:   "set-role",
	Short: "Change a user's role by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		roleName, _ := cmd.Flags().GetString("role")
		if email == "" {
			return errors.New("--email is required")
		}
		role, err := model.ParseRole(roleName)
		if err != nil {
			return err
		}

		db, logger, err := openDB(cmd)
		if err != nil {
			return err
		}
		ctx := middleware.WithLogger(cmd.Context(), logger)

		users := service.NewUserService(db,
			repository.NewGormUserRepository(),
			repository.NewGormCohortRepository(),
			repository.NewGormEnrollmentRepository(),
			repository.NewGormModuleAssignmentRepository(),
			repository.NewGormModuleRepository(),
			nil,
			service.SystemClock{},
		)
		user, err := users.SetRole(ctx, email, role)
		if err != nil {
			return fmt.Errorf("set role for %s: %w", email, err)
		}
		logger.Info("Role updated", "user_id", user.ID.String(), "email", user.Email, "role", user.Role.String())
		return nil
	},
}

func init() {
	setRoleCmd.Flags().String("email", "", "Email address of the user")
	setRoleCmd.Flags().String("role", "", "New role (student, instructor, admin)")
}
