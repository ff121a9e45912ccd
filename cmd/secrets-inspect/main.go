package main

import (
	"os"

	"github.com/org/secretsapi/pkg/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	yamlInput bool
	compact   bool
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "secrets-inspect",
	Short: "Inspect recorded secrets API payloads",
	Long: "Decode recorded secrets API response payloads through the typed model\n" +
		"layer, report what they contain, and re-emit them in canonical form.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
	},
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&yamlInput, "yaml", false, "Treat input as a YAML fixture")
	rootCmd.PersistentFlags().BoolVar(&compact, "compact", false, "Emit compact JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(listCmd(), secretCmd(), loginCmd())
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "Validate a list-secrets response payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readPayload(args)
			if err != nil {
				return err
			}
			resp, err := models.ListSecretsResponseFromMap(m)
			if err != nil {
				log.Error().Err(err).Msg("payload rejected")
				return err
			}
			log.Info().
				Int("secrets", len(resp.Secrets)).
				Int("imports", len(resp.Imports)).
				Msg("payload ok")
			return emit(resp.ToMap())
		},
	}
}

func secretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secret [file]",
		Short: "Validate a single-secret response payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readPayload(args)
			if err != nil {
				return err
			}
			resp, err := models.SingleSecretResponseFromMap(m)
			if err != nil {
				log.Error().Err(err).Msg("payload rejected")
				return err
			}
			log.Info().
				Str("key", resp.Secret.SecretKey).
				Str("environment", resp.Secret.Environment).
				Int("version", resp.Secret.Version).
				Msg("payload ok")
			return emit(resp.ToMap())
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [file]",
		Short: "Validate a machine identity login response payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readPayload(args)
			if err != nil {
				return err
			}
			resp, err := models.MachineIdentityLoginResponseFromMap(m)
			if err != nil {
				log.Error().Err(err).Msg("payload rejected")
				return err
			}
			// The token itself goes to stdout only, never the log.
			log.Info().
				Int("expiresIn", resp.ExpiresIn).
				Int("accessTokenMaxTTL", resp.AccessTokenMaxTTL).
				Str("tokenType", resp.TokenType).
				Msg("payload ok")
			return emit(resp.ToMap())
		},
	}
}
