package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/logging"
)

var (
	configForce     bool
	configSchemaDir string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, create, print and describe the configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		return printConfigPath(cmd.OutOrStdout(), newConfigRenderer(), path)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file and its JSON schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		return initConfig(cmd.OutOrStdout(), newConfigRenderer(), dir, configForce)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and SPLITTER_* environment
variables are applied, in the same TOML layout 'config init' writes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		return showConfig(cmd.OutOrStdout(), dir)
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file, or write it next to the
config with --output. Editors with TOML schema support use it for
completion and validation.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printSchema(cmd.OutOrStdout(), newConfigRenderer(), configSchemaDir)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSchemaDir, "output", "o", "", "directory to write config.schema.json to")
}

// newCommandManager opens the config in dir for commands that run without
// the app, logging as SPLITTER_LOG_LEVEL says.
func newCommandManager(dir string) (*config.Manager, error) {
	mgr, err := config.NewManagerAt(dir)
	if err != nil {
		return nil, err
	}
	mgr.SetLogger(logging.NewFromEnv())
	return mgr, nil
}

func newConfigRenderer() *styles.ConfigRenderer {
	return styles.NewConfigRenderer(styles.NewTheme(nil))
}

func printConfigPath(w io.Writer, renderer *styles.ConfigRenderer, path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		fmt.Fprintln(w, renderer.RenderPath(path, true))
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(w, renderer.RenderPath(path, false))
	default:
		return fmt.Errorf("stat config file: %w", err)
	}
	return nil
}

// initConfig writes the default config and schema into dir. An existing
// config is kept unless force is set.
func initConfig(w io.Writer, renderer *styles.ConfigRenderer, dir string, force bool) error {
	const dirPerm = 0o755

	path := config.ConfigFileIn(dir)
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintln(w, renderer.RenderExists(path))
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	mgr, err := newCommandManager(dir)
	if err != nil {
		return err
	}
	if err := mgr.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintln(w, renderer.RenderCreated("config", path))

	schemaPath, err := config.WriteSchemaFile(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, renderer.RenderCreated("schema", schemaPath))
	return nil
}

// showConfig prints the effective configuration. A missing config file is
// not created.
func showConfig(w io.Writer, dir string) error {
	mgr, err := newCommandManager(dir)
	if err != nil {
		return err
	}
	if err := mgr.Read(); err != nil {
		return err
	}

	data, err := config.MarshalOrdered(mgr.Get())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func printSchema(w io.Writer, renderer *styles.ConfigRenderer, dir string) error {
	if dir != "" {
		path, err := config.WriteSchemaFile(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, renderer.RenderCreated("schema", path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
