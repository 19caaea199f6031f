package commands

import (
	"fmt"
	"io"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// User flags
	userEmail    string
	userPassword string
	userName     string
	userRole     string
)

// userCmd groups the user account commands
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

// userCreateCmd creates a login account
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	Long: `Create a user that can sign in through the login form.

Examples:
  catalogctl user create --email admin@pizzeria.local --password secret --role ADMIN
  catalogctl user create --email mario@pizzeria.local --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		return createUser(db, cmd.OutOrStdout(), userEmail, userPassword, userName, userRole)
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "Email used to sign in")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "Plain text password")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "Display name")
	userCreateCmd.Flags().StringVar(&userRole, "role", models.RoleUser, "Role: USER or ADMIN")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}

func createUser(db *gorm.DB, out io.Writer, email, password, name, role string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	user := &models.User{
		Email:    email,
		Name:     name,
		Password: password,
		Role:     role,
	}
	if err := services.NewUserService(db).CreateUser(user); err != nil {
		return fmt.Errorf("failed to create user %s: %w", email, err)
	}
	fmt.Fprintf(out, "Created user %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
	return nil
}
