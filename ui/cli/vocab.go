// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/keylight/internal/i18n"
)

func newVocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: i18n.T("vocab.short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := services.classifier.Vocabulary()
			out := cmd.OutOrStdout()
			opts, kts := v.Options(), v.KeyTypes()
			fmt.Fprintln(out, i18n.T("vocab.options", len(opts)))
			for _, o := range opts {
				fmt.Fprintf(out, "  %s\n", o)
			}
			fmt.Fprintln(out, i18n.T("vocab.key_types", len(kts)))
			for _, k := range kts {
				fmt.Fprintf(out, "  %s\n", k)
			}
		},
	}
}
