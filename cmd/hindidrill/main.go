package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hindidrill/internal/bootstrap"
	"hindidrill/internal/platform/config"
	"hindidrill/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:           "hindidrill",
		Short:         "Hindi vocabulary drill with pronunciation checks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.String("home", "", "state directory (default ~/.hindidrill)")
	flags.String("config", "", "config file (default <home>/config.yaml)")
	flags.String("api-url", "", "lessons backend base URL")
	flags.String("log-level", "", "log level: debug|info|warn|error")
	flags.String("engine", "", "speech engine: none|command|gcp|plugin")
	_ = v.BindPFlag("home", flags.Lookup("home"))
	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("api.base_url", flags.Lookup("api-url"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("speech.engine", flags.Lookup("engine"))

	root.AddCommand(newTUICmd(v))
	root.AddCommand(newLessonsCmd(v))
	root.AddCommand(newProfileCmd(v))
	root.AddCommand(newSpeechCmd(v))
	return root
}

// session holds what a command needs for its lifetime.
type session struct {
	app    *bootstrap.App
	logger *log.Logger
	closer io.Closer
}

func (s session) Close() {
	_ = s.app.Close()
	_ = s.closer.Close()
}

// loadApp builds the application. logFile sends logs to <home>/hindidrill.log
// instead of stderr.
func loadApp(ctx context.Context, v *viper.Viper, logFile bool) (session, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return session{}, err
	}
	opts := logging.Options{Level: cfg.LogLevel}
	if logFile {
		opts.File = cfg.LogPath
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		return session{}, err
	}
	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		_ = closer.Close()
		return session{}, err
	}
	return session{app: app, logger: logger, closer: closer}, nil
}

func newTUICmd(v *viper.Viper) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the vocabulary drill",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" {
				if err := askName(&name); err != nil {
					return err
				}
			}
			ctx := cmd.Context()
			s, err := loadApp(ctx, v, true)
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := s.app.DrillTUI.Start(ctx, name); err != nil {
				return err
			}
			s.logger.Info("drill started", "profile", strings.TrimSpace(name))
			return bootstrap.RunTUI(s.app)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (prompted when empty)")
	return cmd
}

func askName(name *string) error {
	return huh.NewInput().
		Title("What is your name?").
		Description("Your progress and pronunciation count are saved under it.").
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a name is required")
			}
			return nil
		}).
		Value(name).
		Run()
}

func newLessonsCmd(v *viper.Viper) *cobra.Command {
	lessons := &cobra.Command{Use: "lessons", Short: "Browse the lesson catalog"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List lessons",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadApp(cmd.Context(), v, false)
			if err != nil {
				return err
			}
			defer s.Close()
			items, err := s.app.CatalogCLI.ListLessons(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No categories available")
				return nil
			}
			table := newTable(cmd.OutOrStdout(), "ID", "Name", "Description")
			for _, item := range items {
				table.Append([]string{item.ID, item.Name, item.Description})
			}
			table.Render()
			return nil
		},
	}

	words := &cobra.Command{
		Use:   "words <lesson-id>",
		Short: "List the words of a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadApp(cmd.Context(), v, false)
			if err != nil {
				return err
			}
			defer s.Close()
			items, err := s.app.DrillCLI.ListWords(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			table := newTable(cmd.OutOrStdout(), "#", "Hindi", "Pronunciation", "English", "Example")
			for i, w := range items {
				table.Append([]string{strconv.Itoa(i + 1), w.HindiWord, w.Pronunciation, w.EnglishMeaning, w.ExampleSentence})
			}
			table.Render()
			return nil
		},
	}

	lessons.AddCommand(list, words)
	return lessons
}

func newProfileCmd(v *viper.Viper) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Inspect learner profiles"}

	show := &cobra.Command{
		Use:   "show <name>",
		Short: "Show play count and verified words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadApp(cmd.Context(), v, false)
			if err != nil {
				return err
			}
			defer s.Close()
			out, err := s.app.ProfileCLI.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s: %d pronunciation plays, %d verified words\n", out.Name, out.PronunciationPlayCount, out.VerifiedCount)
			if len(out.Lessons) == 0 {
				return nil
			}
			table := newTable(w, "Lesson", "Verified", "Words", "Updated")
			for _, lesson := range out.Lessons {
				table.Append([]string{
					lesson.LessonID,
					strconv.Itoa(len(lesson.Verified)),
					strings.Join(lesson.Verified, ", "),
					lesson.UpdatedAt,
				})
			}
			table.Render()
			return nil
		},
	}

	var format, output string
	export := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a progress report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadApp(cmd.Context(), v, false)
			if err != nil {
				return err
			}
			defer s.Close()
			raw, err := s.app.ProfileCLI.Export(cmd.Context(), args[0], format)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(output, raw, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	export.Flags().StringVar(&format, "format", "yaml", "report format: yaml|markdown")
	export.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	profile.AddCommand(show, export)
	return profile
}

func newSpeechCmd(v *viper.Viper) *cobra.Command {
	speech := &cobra.Command{Use: "speech", Short: "Check and try the speech engine"}

	doctor := &cobra.Command{
		Use:   "doctor",
		Short: "Report speech capabilities and engine plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadApp(cmd.Context(), v, false)
			if err != nil {
				return err
			}
			defer s.Close()
			out, err := s.app.SpeechCLI.Doctor(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "engine=%s locale=%s recognize=%t speak=%t\n", out.Engine, out.Locale, out.CanRecognize, out.CanSpeak)
			if out.Detail != "" {
				_, _ = fmt.Fprintf(w, "detail: %s\n", out.Detail)
			}
			if len(out.Plugins) == 0 {
				return nil
			}
			table := newTable(w, "Plugin", "Version", "Enabled", "Binary", "Checksum", "Lifecycle", "Error")
			for _, p := range out.Plugins {
				table.Append([]string{
					p.Name, p.Version,
					strconv.FormatBool(p.Enabled),
					strconv.FormatBool(p.BinaryReachable),
					strconv.FormatBool(p.ChecksumValid),
					strconv.FormatBool(p.LifecycleOK),
					p.Error,
				})
			}
			table.Render()
			return nil
		},
	}

	var name string
	say := &cobra.Command{
		Use:   "say <text>",
		Short: "Speak text and count the play for a profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadApp(cmd.Context(), v, false)
			if err != nil {
				return err
			}
			defer s.Close()
			return s.app.SpeechCLI.Say(cmd.Context(), name, strings.Join(args, " "))
		},
	}
	say.Flags().StringVar(&name, "name", "", "profile whose play count is incremented")
	_ = say.MarkFlagRequired("name")

	listen := &cobra.Command{
		Use:   "listen <expected>",
		Short: "Run one verification round against the expected word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadApp(cmd.Context(), v, false)
			if err != nil {
				return err
			}
			defer s.Close()
			out := s.app.SpeechCLI.Listen(cmd.Context(), args[0])
			w := cmd.OutOrStdout()
			switch {
			case out.Transcript != "":
				_, _ = fmt.Fprintf(w, "%s: heard %q\n", out.Kind, out.Transcript)
			case out.Reason != "":
				_, _ = fmt.Fprintf(w, "%s: %s\n", out.Kind, out.Reason)
			default:
				_, _ = fmt.Fprintln(w, out.Kind)
			}
			return out.Err
		},
	}

	speech.AddCommand(doctor, say, listen)
	return speech
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	return table
}
