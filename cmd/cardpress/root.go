package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"cardpress/internal/card"
	"cardpress/internal/config"
	"cardpress/internal/fonts"
	"cardpress/internal/logging"
	"cardpress/internal/settings"
)

// commandContext carries the verbosity flags shared by every command and
// builds the pieces each run needs from them.
type commandContext struct {
	quiet   bool
	verbose bool
	debug   bool
}

func (c *commandContext) logger(w io.Writer) *slog.Logger {
	return logging.New(logging.Options{
		Writer:   w,
		Level:    logging.LevelFromFlags(c.quiet, c.verbose, c.debug),
		Colorize: shouldColorize(w),
	})
}

// loadSettings reads the per-user settings file. An unknown home directory
// behaves like a missing settings file: defaults with empty search paths.
func (c *commandContext) loadSettings() (*settings.Settings, error) {
	path, err := settings.DefaultPath()
	if err != nil {
		return settings.Default(), nil
	}
	return settings.Load(path)
}

func (c *commandContext) openStore(logger *slog.Logger, path string) (*config.Store, *settings.Settings, error) {
	s, err := c.loadSettings()
	if err != nil {
		return nil, nil, err
	}
	store := config.NewStore(s, logger)
	if err := store.Load(path); err != nil {
		return nil, nil, err
	}
	return store, s, nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}
	var example bool
	var force bool

	rootCmd := &cobra.Command{
		Use:           "cardpress [flags] <config> <output>",
		Short:         "Render playing-card images from INI card descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if example {
				return nil
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if example {
				fmt.Fprint(cmd.OutOrStdout(), config.Example())
				return nil
			}
			return ctx.render(cmd, args[0], args[1], force)
		},
	}

	rootCmd.Flags().BoolVar(&example, "example", false, "print the built-in example config and exit")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")
	rootCmd.PersistentFlags().BoolVarP(&ctx.quiet, "quiet", "q", false, "print only error messages")
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "verbose messages")
	rootCmd.PersistentFlags().BoolVarP(&ctx.debug, "debug", "d", false, "debug messages")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func (c *commandContext) render(cmd *cobra.Command, configPath, outputPath string, force bool) error {
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return errors.New("output already exists")
		}
	}

	logger := c.logger(cmd.ErrOrStderr())
	store, s, err := c.openStore(logger, configPath)
	if err != nil {
		return err
	}
	logger.Debug("merged configuration", logging.String("config", store.String()))

	crd, err := card.New(store, fonts.NewLoader(s.FontPaths, logger), logger)
	if err != nil {
		return err
	}
	if err := crd.Render(); err != nil {
		return err
	}
	if err := crd.Save(outputPath); err != nil {
		return err
	}
	logger.Info("card written", logging.String("output", outputPath))
	return nil
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
