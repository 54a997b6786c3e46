// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Command rtfhtml converts RTF documents to HTML.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/mdhender/rtfhtml"
	"github.com/mdhender/rtfhtml/renderer"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	if err := newApp().rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the resources shared by the commands.
type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func newApp() *app {
	return &app{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetFS replaces the filesystem used for input, output, and config files.
func (a *app) SetFS(fs afero.Fs) {
	a.fs = fs
}

func (a *app) rootCommand() *cobra.Command {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "rtfhtml",
		Short: "RTF to HTML converter",
		Long:  `Convert RTF documents to HTML and inspect how they parse`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)
			log.SetOutput(a.stderr)

			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			debug, _ := cmd.Flags().GetBool("debug")
			level := slog.LevelWarn
			switch {
			case debug:
				level = slog.LevelDebug
			case quiet:
				level = slog.LevelError
			case verbose:
				level = slog.LevelInfo
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				_, _ = fmt.Fprintf(a.stdout, "rtfhtml: version %q\n", rtfhtml.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.SetOut(a.stdout)
	cmdRoot.SetErr(a.stderr)
	cmdRoot.AddCommand(a.cmdConvert())
	cmdRoot.AddCommand(a.cmdDump())
	cmdRoot.AddCommand(a.cmdLex())
	cmdRoot.AddCommand(a.cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}
	return cmdRoot
}

func (a *app) cmdConvert() *cobra.Command {
	var configFile string
	var outputFile string
	page := false
	noEscape := false
	charset := 0
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().IntVar(&charset, "charset", charset, "code page for hex escapes when the document declares none")
		cmd.Flags().StringVarP(&configFile, "config-file", "c", configFile, "load configuration from file")
		cmd.Flags().BoolVar(&noEscape, "no-escape", noEscape, "do not escape HTML characters in text")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save html to file")
		cmd.Flags().BoolVar(&page, "page", page, "wrap output in a complete html page")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "convert <rtf-file>",
		Short:        "convert an RTF file to HTML",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require path to rtf file
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if quiet {
				verbose = false
			}

			escapeText := !noEscape
			if configFile != "" {
				cfg, err := loadConfig(a.fs, configFile)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("page") {
					page = cfg.Page
				}
				if !cmd.Flags().Changed("no-escape") && cfg.EscapeText != nil {
					escapeText = *cfg.EscapeText
				}
				if !cmd.Flags().Changed("charset") {
					charset = cfg.Charset
				}
				if !cmd.Flags().Changed("output") {
					outputFile = cfg.Output
				}
			}

			r, err := renderer.New(
				renderer.WithPage(page),
				renderer.WithEscapeText(escapeText),
				renderer.WithCharset(charset),
				renderer.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			root, err := a.parse(args[0], verbose)
			if err != nil {
				return err
			}

			html := r.Render(root)
			if outputFile == "" {
				_, err = io.WriteString(a.stdout, html)
				return err
			} else if err = afero.WriteFile(a.fs, outputFile, []byte(html), 0o644); err != nil {
				return fmt.Errorf("%s: %w", outputFile, err)
			}
			if !quiet {
				log.Printf("%s: wrote %d bytes\n", outputFile, len(html))
			}

			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func (a *app) cmdDump() *cobra.Command {
	asHTML := false
	noColor := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&asHTML, "html", asHTML, "write the listing as html")
		cmd.Flags().BoolVar(&noColor, "no-color", noColor, "do not color the listing")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "dump <rtf-file>",
		Short:        "list the parsed document tree",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require path to rtf file
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			root, err := a.parse(args[0], verbose)
			if err != nil {
				return err
			}
			if asHTML {
				return rtfhtml.DumpHTML(a.stdout, root)
			}
			profile := termenv.Ascii
			if !noColor {
				profile = termenv.NewOutput(a.stdout).EnvColorProfile()
			}
			return rtfhtml.Dump(a.stdout, root, profile)
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func (a *app) cmdLex() *cobra.Command {
	unknownOnly := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&unknownOnly, "unknown-only", unknownOnly, "only list unknown tokens")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "lex <rtf-file>",
		Short:        "list the tokens in an RTF file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require path to rtf file
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			input, err := afero.ReadFile(a.fs, file)
			if err != nil {
				return err
			}
			s := rtfhtml.NewLexer(context.Background(), file, input, a.logger)
			tokenCounter, maxTokens := 0, len(input)+1
			for tokenCounter < maxTokens {
				tok := s.Scan()
				if tok == nil {
					panic("assert(s.scan != nil)")
				}
				tokenCounter++
				logToken := tok.Kind == rtfhtml.UNKNOWN || !unknownOnly
				if logToken {
					_, _ = fmt.Fprintf(a.stdout, "%-35s %5d %-20s %q\n", fmt.Sprintf("%s:%d:%d:", file, tok.Line, tok.Column), tokenCounter, tok.Kind, tok.Lexeme(input))
				}
				if tok.Kind == rtfhtml.EndOfInput {
					break
				}
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func (a *app) cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				_, _ = fmt.Fprintln(a.stdout, rtfhtml.Version().String())
				return nil
			}
			_, _ = fmt.Fprintln(a.stdout, rtfhtml.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// parse reads and parses the file. Parse errors are printed with the
// offending source line. With verbose set, warnings are printed too.
func (a *app) parse(file string, verbose bool) (*rtfhtml.Group, error) {
	input, err := afero.ReadFile(a.fs, file)
	if err != nil {
		return nil, err
	}
	p := rtfhtml.NewParser(context.Background(), file, input, a.logger)
	root, err := p.Parse()
	var pe *rtfhtml.ParseError
	if errors.As(err, &pe) {
		rtfhtml.PrintDiagnostic(a.stderr, pe.Diagnostic(), file, input)
		return nil, err
	} else if err != nil {
		return nil, err
	}
	if verbose {
		for _, diag := range p.Diagnostics() {
			rtfhtml.PrintDiagnostic(a.stderr, diag, file, input)
		}
	}
	return root, nil
}
