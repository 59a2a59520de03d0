package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"phonefix/internal/config"
	"phonefix/internal/domain/user"
	"phonefix/internal/infrastructure/storage/postgres"
	"phonefix/internal/utils/logger"
)

const minPasswordLength = 8

// useraddCmd provisions an admin account. There is no registration endpoint;
// accounts are created from the server host only.
var useraddCmd = &cobra.Command{
	Use:   "useradd <login>",
	Short: "Create or update an admin account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loginID := args[0]

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}
		if len(password) < minPasswordLength {
			return fmt.Errorf("password must be at least %d characters", minPasswordLength)
		}

		cfg := config.MustLoad()
		log := logger.New(cfg.Env)

		storage, err := postgres.New(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer func() { _ = storage.Close() }()

		users := user.NewService(postgres.NewUserRepository(storage.Pool(), log), log)
		if err := users.Provision(cmd.Context(), loginID, string(password)); err != nil {
			return fmt.Errorf("provision user: %w", err)
		}

		fmt.Printf("Admin account %q is ready\n", loginID)
		return nil
	},
}
