package composecmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"namesplit/src/internal/names"
	"namesplit/src/internal/stringsx"
)

// New returns the compose command which joins name parts into a display name.
func New() *cobra.Command {
	var honorific, first, last string
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a display name from honorific, first name and last name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stringsx.FirstNonEmpty(honorific, first, last) == "" {
				return errors.New("at least one of --honorific, --first, --last is required")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), names.Compose(honorific, first, last))
			return err
		},
	}
	cmd.Flags().StringVar(&honorific, "honorific", "", "Honorific, e.g. Dr")
	cmd.Flags().StringVar(&first, "first", "", "First (given) name")
	cmd.Flags().StringVar(&last, "last", "", "Last (family) name")
	return cmd
}
