// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/keylight/buildvars"
	"github.com/toeirei/keylight/internal/config"
	"github.com/toeirei/keylight/internal/highlight"
	"github.com/toeirei/keylight/internal/i18n"
	"github.com/toeirei/keylight/internal/logging"
	"github.com/toeirei/keylight/internal/vocab"
	"golang.org/x/term"
)

var version = buildvars.VersionOrDefault("dev") // this will be set by the linker
var gitCommit = "dev"                             // set at build time with the short commit SHA
var buildDate = ""                                // set at build time (RFC3339)

var appConfig config.Config

// services holds what the commands need, built once per invocation from
// appConfig.
var services struct {
	classifier *highlight.Classifier
}

// isTerminal is swapped by tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logging.SetVerbose(verbose)

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return errors.New(i18n.T("error.config", err))
	}
	if cmd.Flags().Changed("preset") {
		appConfig.Vocabulary.Preset, _ = cmd.Flags().GetString("preset")
	}
	if appConfig.Language == "" {
		appConfig.Language = "en"
	}

	i18n.Init(appConfig.Language)
	logging.Debugf("language %s, preset %q, color %s", i18n.GetLang(), appConfig.Vocabulary.Preset, appConfig.Color)

	v, err := buildVocabulary(appConfig.Vocabulary)
	if err != nil {
		return errors.New(i18n.T("error.vocabulary", err))
	}
	services.classifier = highlight.NewClassifier(v)
	return nil
}

func buildVocabulary(vc config.VocabularyConfig) (*vocab.Vocabulary, error) {
	v, err := vocab.Preset(vc.Preset)
	if err != nil {
		return nil, err
	}
	if len(vc.Options) > 0 || len(vc.KeyTypes) > 0 {
		logging.Debugf("extending vocabulary with %d options and %d key types", len(vc.Options), len(vc.KeyTypes))
		v = v.With(vc.Options, vc.KeyTypes)
	}
	return v, nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// Execute runs the CLI entrypoint. The cmd/keylight main package should
// call this function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command. Tests build
// a fresh instance for each case.
func NewRootCmd() *cobra.Command {
	i18n.Init(languageFromArgs(os.Args[1:]))

	cmd := &cobra.Command{
		Use:               "keylight [file]",
		Short:             i18n.T("cli.short"),
		Long:              i18n.T("cli.long"),
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if isTerminal(os.Stdout) && isTerminal(os.Stdin) && args[0] != "-" {
				return runView(cmd, args[0])
			}
			return runPrint(cmd, args)
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	pf := cmd.PersistentFlags()
	pf.String("config", "", i18n.T("cli.flag_config"))
	pf.BoolP("verbose", "v", false, i18n.T("cli.flag_verbose"))
	pf.String("language", "en", i18n.T("cli.flag_language"))
	pf.String("preset", vocab.PresetDefault, i18n.T("cli.flag_preset"))
	pf.StringP("kind", "k", "", i18n.T("cli.flag_kind"))
	pf.Bool("abbreviate", true, i18n.T("cli.flag_abbreviate"))
	pf.String("color", "auto", i18n.T("cli.flag_color"))

	cmd.AddCommand(
		newPrintCmd(),
		newViewCmd(),
		newTokensCmd(),
		newVocabCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// languageFromArgs peeks at --language before cobra parses flags so help
// texts are already translated.
func languageFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "--language" && i+1 < len(args):
			return args[i+1]
		case len(a) > len("--language=") && a[:len("--language=")] == "--language=":
			return a[len("--language="):]
		}
	}
	if l := os.Getenv("KEYLIGHT_LANGUAGE"); l != "" {
		return l
	}
	return "en"
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("version.short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record the module as a dependency.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/keylight" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
