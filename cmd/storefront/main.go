package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mzansi-thrift/storefront/internal/config"
)

var (
	cfg *config.Config

	baseURL   string
	sessionDB string
	debug     bool
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Command-line client for the storefront API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			loaded, err := config.New()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				loaded.BaseURL = baseURL
			}
			if cmd.Flags().Changed("session-db") {
				loaded.SessionDB = sessionDB
			}
			if debug {
				loaded.Debug = true
			}
			cfg = loaded

			// Set log level based on debug flag
			if cfg.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Base URL of the storefront API (default $STOREFRONT_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&sessionDB, "session-db", "", `Session database path, or "memory" (default $STOREFRONT_SESSION_DB)`)
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(
		// accounts
		newRegisterCmd(),
		newSellerRegisterCmd(),
		newLoginCmd(),
		newSellerLoginCmd(),
		newLogoutCmd(),
		newWhoAmICmd(),
		newSessionCmd(),
		// catalog
		newBootstrapCmd(),
		newHealthCmd(),
		newListProductsCmd(),
		newGetProductCmd(),
		newListCategoriesCmd(),
		newListReviewsCmd(),
		newCreateReviewCmd(),
		newContactCmd(),
		// cart and orders
		newGetCartCmd(),
		newAddToCartCmd(),
		newUpdateCartItemCmd(),
		newRemoveFromCartCmd(),
		newClearCartCmd(),
		newListOrdersCmd(),
		newGetOrderCmd(),
		newCreateOrderCmd(),
		newCancelOrderCmd(),
		newPayCmd(),
		// profile
		newUpdateProfileCmd(),
		newUpdateAddressCmd(),
		newChangePasswordCmd(),
		// seller
		newSellerDashboardCmd(),
		newSellerProductsCmd(),
		newSellerOrdersCmd(),
		newSellerStatsCmd(),
		newCreateProductCmd(),
		newUpdateProductCmd(),
		newDeleteProductCmd(),
		newCreateProductWithMediaCmd(),
		newListProductMediaCmd(),
		newAddProductMediaCmd(),
		newUpdateProductMediaCmd(),
		newDeleteProductMediaCmd(),
		newUploadMediaCmd(),
		newUpdateOrderStatusCmd(),
		// local helpers
		newQuoteShippingCmd(),
		newFormatPhoneCmd(),
	)

	return rootCmd
}
