// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/keylight/internal/highlight"
	"github.com/toeirei/keylight/internal/i18n"
	"github.com/toeirei/keylight/internal/source"
)

type tokenSpan struct {
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
	Category string `json:"category" yaml:"category"`
	Text     string `json:"text" yaml:"text"`
}

type tokenRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

type tokenLine struct {
	Line  int          `json:"line" yaml:"line"`
	Spans []tokenSpan  `json:"spans" yaml:"spans"`
	Folds []tokenRange `json:"folds,omitempty" yaml:"folds,omitempty"`
}

type tokenDocument struct {
	Path  string      `json:"path" yaml:"path"`
	Kind  string      `json:"kind" yaml:"kind"`
	Lines []tokenLine `json:"lines" yaml:"lines"`
}

// toTokenDocument keeps only lines with at least one span; everything else
// is plain text.
func toTokenDocument(f *source.File, lines []highlight.Line) tokenDocument {
	doc := tokenDocument{Path: f.Path, Kind: f.Kind.String(), Lines: []tokenLine{}}
	for _, l := range lines {
		if len(l.Spans) == 0 {
			continue
		}
		tl := tokenLine{Line: l.Number}
		for _, s := range l.Spans {
			tl.Spans = append(tl.Spans, tokenSpan{Start: s.Start, End: s.End, Category: s.Category.String(), Text: s.Text(l.Text)})
		}
		for _, r := range l.Folds {
			tl.Folds = append(tl.Folds, tokenRange{Start: r.Start, End: r.End})
		}
		doc.Lines = append(doc.Lines, tl)
	}
	return doc
}

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: i18n.T("tokens.short"),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := source.Stdin
			if len(args) == 1 {
				path = args[0]
			}
			format, _ := cmd.Flags().GetString("format")
			if format != "json" && format != "yaml" {
				return errors.New(i18n.T("error.unknown_format", format))
			}
			f, lines, err := loadDocument(cmd, path)
			if err != nil {
				return err
			}
			doc := toTokenDocument(f, lines)

			var data []byte
			if format == "yaml" {
				data, err = yaml.Marshal(doc)
			} else {
				data, err = json.MarshalIndent(doc, "", "  ")
				data = append(data, '\n')
			}
			if err != nil {
				return fmt.Errorf("could not encode tokens: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "json", i18n.T("cli.flag_format"))
	return cmd
}
