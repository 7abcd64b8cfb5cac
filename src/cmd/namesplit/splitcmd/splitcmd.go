package splitcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"namesplit/src/cmd/namesplit/cmdutil"
	"namesplit/src/internal/names"
)

// New returns the split command which prints the honorific, first and last
// name recovered from a full name.
func New() *cobra.Command {
	var honorific bool
	var format string
	cmd := &cobra.Command{
		Use:   "split <name...>",
		Short: "Split a full name into honorific, first name and last name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdutil.LoadConfig(cmd)
			if err != nil {
				return err
			}
			r := cfg.Splitter().Split(strings.Join(args, " "), honorific)
			cmdutil.Logger(cmd, cfg, "split").Debug("split name", "first_name", r.FirstName, "last_name", r.LastName)
			return Print(cmd.OutOrStdout(), r, format)
		},
	}
	cmd.Flags().BoolVarP(&honorific, "honorific", "t", false, "Extract a leading honorific (Mr, Dr, Prof, ...)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, yaml, json, apa")
	return cmd
}

// Print writes r in the given format.
func Print(w io.Writer, r names.Result, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		_, err := fmt.Fprintf(w, "honorific: %s\nfirst_name: %s\nlast_name: %s\n", orDash(r.Honorific), orDash(r.FirstName), orDash(r.LastName))
		return err
	case "yaml", "yml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "json":
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "apa":
		_, err := fmt.Fprintln(w, r.Citation())
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
