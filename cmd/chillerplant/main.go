package main

import (
	"context"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/app"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	envFile    string
	configFile string

	rootCmd = &cobra.Command{
		Use:   "chillerplant",
		Short: "Chiller plant assistant API",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: runServe,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  runServe,
	}

	toolsCmd = &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog advertised to the model as JSON",
		RunE:  runTools,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from a .env file")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "read configuration from a YAML, JSON or TOML file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	serveCmd.Flags().Int("port", 8080, "HTTP port")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd, toolsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the optional .env and config files and binds the flags,
// then registers the viper instance read by the configuration provider chain.
func loadConfig(cmd *cobra.Command) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	bindings := map[string]string{
		"HTTP_PORT": "port",
		"LOG_LEVEL": "log-level",
	}
	for key, flag := range bindings {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}

	depend.Register(v)
	return nil
}

func runServe(_ *cobra.Command, _ []string) error {
	return app.NewChillerPlantApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
}

func runTools(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	printer := &app.ToolCatalogPrinter{
		Out:  cmd.OutOrStdout(),
		Done: cancel,
	}
	return <-app.NewToolCatalogApp().
		Host(printer).
		RunAsync(ctx)
}
