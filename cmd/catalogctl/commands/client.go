package commands

import (
	"fmt"
	"io"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// Client flags
	clientOwner  string
	clientName   string
	clientDomain string
	clientScopes string
)

// clientCmd groups the OAuth2 client commands
var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage OAuth2 API clients",
}

// clientCreateCmd registers an API client owned by an existing user
var clientCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an OAuth2 client for the JSON API",
	Long: `Create a client-credentials client. Tokens issued to the client carry the
role of the owning user, so a client owned by an ADMIN can call /admin/api.

Examples:
  catalogctl client create --email admin@pizzeria.local --name "Menu board"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		return createClient(db, cmd.OutOrStdout(), clientOwner, clientName, clientDomain, clientScopes)
	},
}

func init() {
	clientCreateCmd.Flags().StringVar(&clientOwner, "email", "", "Email of the user owning the client")
	clientCreateCmd.Flags().StringVar(&clientName, "name", "Development Client", "Client name")
	clientCreateCmd.Flags().StringVar(&clientDomain, "domain", "http://localhost", "Client domain")
	clientCreateCmd.Flags().StringVar(&clientScopes, "scopes", "read write", "Space separated scopes")
	_ = clientCreateCmd.MarkFlagRequired("email")

	clientCmd.AddCommand(clientCreateCmd)
}

func createClient(db *gorm.DB, out io.Writer, ownerEmail, name, domain, scopes string) error {
	owner, err := services.NewUserService(db).GetUserByEmail(ownerEmail)
	if err != nil {
		return fmt.Errorf("failed to find user %s: %w", ownerEmail, err)
	}

	clientID := uuid.New().String()
	clientSecret := uuid.New().String()
	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash secret: %w", err)
	}

	client := &models.OAuthClient{
		ID:     clientID,
		Secret: string(hash),
		Name:   name,
		Domain: domain,
		UserID: owner.ID,
		Scopes: scopes,
	}
	if err := services.NewClientService(db).CreateClient(client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	fmt.Fprintf(out, "OAuth client created for %s (role %s)\n", owner.Email, owner.Role)
	fmt.Fprintf(out, "Client ID: %s\n", clientID)
	fmt.Fprintf(out, "Client Secret: %s\n", clientSecret)
	fmt.Fprintln(out, "\nRequest a token with:")
	fmt.Fprintf(out, "curl -X POST http://localhost:8080/oauth/token \\\n")
	fmt.Fprintf(out, "  -d 'grant_type=client_credentials' \\\n")
	fmt.Fprintf(out, "  -d 'client_id=%s' \\\n", clientID)
	fmt.Fprintf(out, "  -d 'client_secret=%s'\n", clientSecret)
	return nil
}
