package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"pet-clients/internal/domain/clients"
	"pet-clients/internal/platform/logger"
	"pet-clients/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

type openRepoFunc func(ctx context.Context) (clients.Repository, func() error, error)

// cli junta lo que comparten los subcomandos.
type cli struct {
	open    openRepoFunc
	verbose bool
	logFile string
}

func newRootCmd(open openRepoFunc) *cobra.Command {
	c := &cli{open: open}

	root := &cobra.Command{
		Use:           "clients",
		Short:         "Pet clients record keeper",
		Long:          `Lista y agrega clientes (solo tipo de animal) en la tabla clients.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(
		c.listCmd(),
		c.addCmd(),
		c.animalsCmd(),
		c.tuiCmd(),
	)

	return root
}

// newLogger: los comandos de una línea loguean a stderr (solo warn+ salvo --verbose);
// la tui solo loguea si hay --log-file, para no romper la pantalla.
func (c *cli) newLogger(interactive bool) (*logger.ZapLogger, func(), error) {
	level := logger.Warn
	if c.verbose {
		level = logger.Debug
	}

	if c.logFile == "" {
		if interactive {
			return logger.Nop(), func() {}, nil
		}
		return logger.New(logger.Options{Level: level, Output: zapcore.Lock(os.Stderr)}), func() {}, nil
	}

	f, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logger.New(logger.Options{Level: level, Format: logger.FormatJSON, Output: zapcore.AddSync(f)})
	return log, func() { _ = log.Sync(); _ = f.Close() }, nil
}

// controller abre el repositorio y arma un Controller; cleanup cierra todo.
func (c *cli) controller(cmd *cobra.Command, interactive bool) (*clients.Controller, func(), error) {
	log, closeLog, err := c.newLogger(interactive)
	if err != nil {
		return nil, nil, err
	}

	repo, closeRepo, err := c.open(cmd.Context())
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	cleanup := func() {
		if err := closeRepo(); err != nil {
			log.Warn("close store", map[string]any{"error": err})
		}
		closeLog()
	}
	return clients.NewController(repo, log), cleanup, nil
}

func (c *cli) listCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, cleanup, err := c.controller(cmd, false)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := ctrl.LoadAll(cmd.Context()); err != nil {
				return err
			}
			ctrl.SetSearchTerm(search)

			printClients(cmd, ctrl.Snapshot().Filtered())
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive filter on animal")
	return cmd
}

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <animal>",
		Short: "Add a client (puppy, turtle or cat)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := c.controller(cmd, false)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := ctrl.AddRecord(cmd.Context(), clients.NewClient{Animal: clients.Animal(args[0])}); err != nil {
				return err
			}

			printClients(cmd, ctrl.Snapshot().Clients)
			return nil
		},
	}
}

func (c *cli) animalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "animals",
		Short: "List the animal types offered when adding a client",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, a := range clients.Choices() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", clients.Emoji(a), a)
			}
		},
	}
}

func (c *cli) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive clients page in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, cleanup, err := c.controller(cmd, true)
			if err != nil {
				return err
			}
			defer cleanup()

			p := tea.NewProgram(
				tui.NewModel(cmd.Context(), ctrl),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
			)
			_, err = p.Run()
			return err
		},
	}
}

func printClients(cmd *cobra.Command, items []clients.Client) {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "no clients")
		return
	}
	for _, cl := range items {
		fmt.Fprintf(out, "%s  %-8s %s  %s\n",
			clients.Emoji(cl.Animal),
			strings.ToLower(string(cl.Animal)),
			cl.CreatedAt.Format("2006-01-02 15:04:05"),
			cl.ID,
		)
	}
}
