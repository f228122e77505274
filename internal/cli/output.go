package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// render writes v as indented JSON in JSON mode, otherwise calls text.
func (a *app) render(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.jsonOutput() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}
