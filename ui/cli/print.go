// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/toeirei/keylight/internal/highlight"
	"github.com/toeirei/keylight/internal/i18n"
	"github.com/toeirei/keylight/internal/logging"
	"github.com/toeirei/keylight/internal/render"
	"github.com/toeirei/keylight/internal/source"
	"github.com/toeirei/keylight/internal/tui"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print [file...]",
		Short: i18n.T("print.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, args)
		},
	}
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: i18n.T("view.short"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0])
		},
	}
}

func kindFromFlags(cmd *cobra.Command) (highlight.Kind, error) {
	s, _ := cmd.Flags().GetString("kind")
	if s == "" {
		return highlight.KindUnknown, nil
	}
	return highlight.ParseKind(s)
}

// loadDocument reads and classifies path. Every call classifies afresh.
func loadDocument(cmd *cobra.Command, path string) (*source.File, []highlight.Line, error) {
	kind, err := kindFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}
	f, err := source.Load(path, kind)
	if err != nil {
		return nil, nil, errors.New(i18n.T("error.load", path, err))
	}
	logging.Debugf("loaded %s as %s (%d lines)", path, f.Kind, len(f.Lines))
	return f, services.classifier.Document(f.Kind, f.Lines), nil
}

// newTheme picks the theme for w according to the color mode.
func newTheme(w io.Writer) (render.Theme, error) {
	colors, err := render.ParseColors(appConfig.Theme)
	if err != nil {
		return render.Theme{}, err
	}
	var th render.Theme
	switch appConfig.Color {
	case "never":
		th = render.Plain()
	case "always":
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI256)
		th = render.NewTheme(r, colors)
	case "", "auto":
		if f, ok := w.(*os.File); ok && isTerminal(f) {
			th = render.NewTheme(lipgloss.NewRenderer(w), colors)
		} else {
			th = render.Plain()
		}
	default:
		return render.Theme{}, errors.New(i18n.T("error.unknown_color", appConfig.Color))
	}
	if appConfig.Ellipsis != "" {
		th.Ellipsis = appConfig.Ellipsis
	}
	return th, nil
}

func runPrint(cmd *cobra.Command, paths []string) error {
	if len(paths) == 0 {
		paths = []string{source.Stdin}
	}
	out := cmd.OutOrStdout()
	th, err := newTheme(out)
	if err != nil {
		return err
	}
	opts := render.Options{Abbreviate: appConfig.Abbreviate}
	for i, path := range paths {
		_, lines, err := loadDocument(cmd, path)
		if err != nil {
			return err
		}
		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", path)
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintln(out, th.Document(lines, opts))
	}
	return nil
}

func runView(cmd *cobra.Command, path string) error {
	f, lines, err := loadDocument(cmd, path)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		return errors.New(i18n.T("error.no_terminal"))
	}
	th, err := newTheme(os.Stdout)
	if err != nil {
		return err
	}

	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)
	return tui.Run(tui.New(filepath.Base(f.Path), f.Kind, lines, th, appConfig.Abbreviate))
}
