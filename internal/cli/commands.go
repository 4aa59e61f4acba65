package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"incubator/internal/prefix"
)

type parseOutput struct {
	Title     string `json:"title"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	Project   string `json:"project,omitempty"`
	Lang      string `json:"lang,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Remainder string `json:"remainder,omitempty"`
}

func newParseCommand(opts *rootOptions) *cobra.Command {
	var (
		namespace int
		infoOnly  bool
		sister    bool
	)
	cmd := &cobra.Command{
		Use:   "parse <title>",
		Short: "Parse a test wiki title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			mode := prefix.FullTitle
			if infoOnly {
				mode = prefix.InfoPageOnly
			}
			var parsed prefix.Parsed
			if cmd.Flags().Changed("namespace") {
				parsed = svc.Parse(prefix.Title{Namespace: namespace, Text: args[0]}, mode, sister)
			} else {
				parsed = svc.ParseText(args[0], mode, sister)
			}
			out := parseOutput{
				Title:     args[0],
				Valid:     parsed.OK(),
				Error:     parsed.Error.String(),
				Project:   parsed.Project,
				Lang:      parsed.Lang,
				Prefix:    parsed.Prefix,
				Remainder: parsed.Remainder,
			}
			if !parsed.OK() {
				return opts.print(cmd.OutOrStdout(), out, "invalid: "+out.Error)
			}
			lines := []string{
				"prefix:  " + parsed.Prefix,
				"project: " + parsed.Project,
				"lang:    " + parsed.Lang,
			}
			if parsed.HasRemainder {
				lines = append(lines, "page:    "+parsed.Remainder)
			}
			return opts.print(cmd.OutOrStdout(), out, lines...)
		},
	}
	cmd.Flags().IntVarP(&namespace, "namespace", "n", 0, "namespace of the title; namespace checks apply only when set")
	cmd.Flags().BoolVar(&infoOnly, "info", false, "accept only bare prefixes")
	cmd.Flags().BoolVar(&sister, "sister", false, "allow sister project codes")
	return cmd
}

func newCodeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "code <language-code>",
		Short: "Check a language code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			valid := svc.ValidLanguageCode(args[0])
			out := map[string]any{"code": args[0], "valid": valid}
			return opts.print(cmd.OutOrStdout(), out, args[0]+": valid="+strconv.FormatBool(valid))
		},
	}
}

func newStateCommand(opts *rootOptions) *cobra.Command {
	var sister bool
	cmd := &cobra.Command{
		Use:   "state <prefix>",
		Short: "Resolve the lifecycle state of a test wiki",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			parsed := svc.Parse(prefix.Title{Text: args[0]}, prefix.FullTitle, sister)
			status, err := svc.Status(cmd.Context(), parsed)
			if err != nil {
				return err
			}
			lines := []string{
				"prefix:    " + status.Prefix,
				"database:  " + status.Database,
				"state:     " + status.State.String(),
				"status:    " + string(status.SubStatus),
				fmt.Sprintf("main page: %s (exists=%t)", status.MainPage.Title, status.MainPage.Exists),
			}
			if status.URL != "" {
				lines = append(lines, "url:       "+status.URL)
			}
			return opts.print(cmd.OutOrStdout(), status, lines...)
		},
	}
	cmd.Flags().BoolVar(&sister, "sister", false, "allow sister project codes")
	return cmd
}

func newURLCommand(opts *rootOptions) *cobra.Command {
	var logo bool
	cmd := &cobra.Command{
		Use:   "url <lang> <project> [page]",
		Short: "Print the address of a provisioned wiki",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(cmd)
			if err != nil {
				return err
			}
			var url string
			if logo {
				url, err = svc.LogoURL(args[0], args[1])
			} else {
				page := ""
				if len(args) == 3 {
					page = args[2]
				}
				url, err = svc.SubdomainURL(args[0], args[1], page)
			}
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), map[string]string{"url": url}, url)
		},
	}
	cmd.Flags().BoolVar(&logo, "logo", false, "print the logo address instead")
	return cmd
}
