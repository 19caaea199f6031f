package commands

import (
	"fmt"
	"os"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/config"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// Global flags
	envFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Administration tool for the pizzeria catalog",
	Long: `catalogctl provisions the pizzeria catalog database.

It reads the same environment variables as the web server (DB_DRIVER, DB_PATH,
DATABASE_URL, ...) and migrates the schema before running a command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		setLogLevel(verbose)
	},
}

// setLogLevel applies one level to the global logger and the package loggers
func setLogLevel(verbose bool) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	config.SetLogLevel(level)
	database.SetLogLevel(level)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading the configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(seedCmd)
}

// openDatabase connects with the application configuration and migrates the schema
func openDatabase() (*gorm.DB, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.WithField("file", envFile).Debug("No environment file loaded")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.InitDatabase(conf.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
