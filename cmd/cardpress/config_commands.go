package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cardpress/internal/fileutil"
	"cardpress/internal/settings"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigFieldsCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <config>",
		Short: "Print the merged card configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := ctx.openStore(ctx.logger(cmd.ErrOrStderr()), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), store.String())
			return nil
		},
	}
}

func newConfigFieldsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <config>",
		Short: "List the card fields a configuration declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := ctx.openStore(ctx.logger(cmd.ErrOrStderr()), args[0])
			if err != nil {
				return err
			}
			sec, err := store.Section("Card")
			if err != nil {
				return err
			}

			var rows [][]string
			for _, key := range sec.Keys() {
				kind, ok := fieldKind(key)
				if !ok {
					continue
				}
				area := "-"
				if fieldSec, err := store.SectionFor(key); err == nil {
					if v, ok := fieldSec.Lookup("area"); ok {
						area = v
					}
				}
				rows = append(rows, []string{key, kind, area, sec.Get(key, "")})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Kind", "Area", "Value"},
				rows,
				[]int{0, 0, 0, 48},
			))
			return nil
		},
	}
}

// fieldKind classifies a Card key by its field prefix. Keys that do not name
// a renderable field (template, background, border, ...) report ok=false.
func fieldKind(key string) (kind string, ok bool) {
	switch {
	case strings.HasPrefix(key, "title"):
		return "title", true
	case strings.HasPrefix(key, "text"):
		return "text", true
	case strings.HasPrefix(key, "image"):
		return "image", true
	case strings.HasPrefix(key, "pango"):
		return "pango", true
	case strings.HasPrefix(key, "qr"):
		return "qr", true
	}
	return "", false
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := settings.DefaultPath()
				if err != nil {
					return fmt.Errorf("determine default settings path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := fileutil.ExpandUser(target)
				if err != nil {
					return fmt.Errorf("resolve settings path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check settings path: %w", err)
				}
			}

			if err := settings.CreateSample(target); err != nil {
				return fmt.Errorf("create sample settings: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample settings to %s\n", target)
			fmt.Fprintln(out, "Edit the file to point template_paths, image_paths, and font_paths at your asset directories.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the settings file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing settings if present")
	return cmd
}
