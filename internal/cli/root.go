// Package cli implements incubatorctl, an offline view of a registry file:
// parse titles, check language codes, resolve wiki states and addresses.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"incubator/internal/incubator"
	"incubator/internal/pages"
	"incubator/internal/registry"
)

const defaultRegistryFile = "config/incubator.yaml"

type rootOptions struct {
	registryFile string
	pagesFile    string
	jsonOutput   bool
	verbose      bool
}

// NewRootCommand builds the incubatorctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "incubatorctl",
		Short: "Inspect incubator test wiki prefixes",
		Long: `incubatorctl answers incubator questions against a registry file
without a running server.

Examples:
  incubatorctl parse Wp/nl/Hoofdpagina
  incubatorctl code be-x-old
  incubatorctl state Wp/nl --pages config/pages.txt
  incubatorctl url nl p Hoofdpagina`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.registryFile, "registry", "r", defaultRegistryFile, "registry file path")
	cmd.PersistentFlags().StringVar(&opts.pagesFile, "pages", "", "page list seeding the page index")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging on stderr")

	cmd.AddCommand(
		newParseCommand(opts),
		newCodeCommand(opts),
		newStateCommand(opts),
		newURLCommand(opts),
	)
	return cmd
}

// service loads the registry and page list named by the flags.
func (o *rootOptions) service(cmd *cobra.Command) (*incubator.Service, error) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	bundle, err := registry.LoadFile(o.registryFile)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	index, err := pages.LoadInMemoryIndex(o.pagesFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("registry loaded",
		"path", o.registryFile,
		"projects", len(bundle.Registry.Projects()),
	)
	return incubator.New(incubator.NewSnapshot(bundle), index,
		incubator.WithLogger(logger),
		incubator.WithRegistryFile(o.registryFile),
	), nil
}

// print writes v as JSON when --json is set, else the text lines.
func (o *rootOptions) print(w io.Writer, v any, lines ...string) error {
	if o.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
