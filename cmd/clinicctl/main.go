package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/services/core/users"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinicctl",
		Short: "Administrative tasks for the clinic service",
	}
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			firstName, _ := cmd.Flags().GetString("first-name")
			lastName, _ := cmd.Flags().GetString("last-name")
			if password == "" {
				password = os.Getenv("CLINIC_ADMIN_PASSWORD")
			}

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()

			log, err := logger.NewZapLogger(driverConfig, internalConfig)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			db, err := database.NewMongoDB(ctx, driverConfig, log)
			if err != nil {
				return err
			}
			defer db.Client().Disconnect(context.Background())

			userUsecase := users.NewUserUsecase(users.NewUserMongoRepository(db), log)
			admin, err := userUsecase.ProvisionAdmin(ctx, &requests.CreateUser{
				Email:     email,
				Password:  password,
				FirstName: firstName,
				LastName:  lastName,
			})
			if err != nil {
				var customErr *exceptions.CustomError
				if errors.As(err, &customErr) {
					for field, message := range customErr.Fields {
						fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", field, message)
					}
					return fmt.Errorf("%s", customErr.ClientMessage)
				}
				return err
			}

			log.Info("Administrator created", zap.String("user_id", admin.ID), zap.String("email", admin.Email))
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", admin.Email, admin.ID)
			return nil
		},
	}

	cmd.Flags().String("email", "", "Administrator email")
	cmd.Flags().String("password", "", "Administrator password, falls back to CLINIC_ADMIN_PASSWORD")
	cmd.Flags().String("first-name", "Clinic", "Administrator first name")
	cmd.Flags().String("last-name", "Admin", "Administrator last name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
