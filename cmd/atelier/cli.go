package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rvasay/atelier/internal/agent"
	"github.com/rvasay/atelier/internal/config"
	"github.com/rvasay/atelier/internal/errors"
	"github.com/rvasay/atelier/internal/index"
	"github.com/rvasay/atelier/internal/orchestrate"
	"github.com/rvasay/atelier/internal/run"
	"github.com/rvasay/atelier/internal/scaffold"
	"github.com/rvasay/atelier/internal/session"
	"github.com/rvasay/atelier/internal/snapshot"
	"github.com/rvasay/atelier/internal/web"
	"github.com/rvasay/atelier/internal/workspace"
)

// rootFlag selects the workspace; every command takes it.
var rootFlag = &cli.StringFlag{
	Name:    "root",
	Aliases: []string{"r"},
	Value:   ".",
	Usage:   "Workspace root directory",
	EnvVars: []string{"ATELIER_ROOT"},
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "atelier",
		Usage:   "Workspace context orchestrator for an external coding agent",
		Version: Version,
		Commands: []*cli.Command{
			chatCmd(),
			initCmd(),
			contextCmd(),
			historyCmd(),
			serveCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// openWorkspace resolves the root flag and loads its configuration.
func openWorkspace(c *cli.Context) (workspace.Root, *config.Config, error) {
	root := workspace.New(c.String("root"))
	cfg, err := config.Load(root.StateDir())
	if err != nil {
		return root, nil, fmt.Errorf("load config: %w", err)
	}
	return root, cfg, nil
}

// openLedger opens the turn ledger, best effort. A broken ledger degrades
// to nil rather than blocking the chat path.
func openLedger(root workspace.Root) *sql.DB {
	ledger, err := index.Init(root.StateDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: turn ledger unavailable: %v\n", err)
		return nil
	}
	return ledger
}

// chatCmd creates the chat command, the primary entry point.
func chatCmd() *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "Send a message to the agent with full workspace context",
		ArgsUsage: "<message...>",
		Flags:     []cli.Flag{rootFlag},
		Action: func(c *cli.Context) error {
			message := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if message == "" {
				return fmt.Errorf("usage: atelier chat <message>")
			}

			root, cfg, err := openWorkspace(c)
			if err != nil {
				return err
			}

			ledger := openLedger(root)
			if ledger != nil {
				defer ledger.Close()
			}

			ag := agent.New(cfg.AgentCommand, time.Duration(cfg.AgentTimeoutSecs)*time.Second)
			engine := orchestrate.New(root, cfg, ag, session.NewStore(root), run.NewOSRunner(), ledger)

			result, err := engine.Run(c.Context, message)
			if err != nil {
				return err
			}
			return outputJSON(result)
		},
	}
}

// initCmd creates the init command for explicit scaffolding.
func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Scaffold a new project in the workspace",
		ArgsUsage: "[name...]",
		Flags: []cli.Flag{
			rootFlag,
			&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Project description for ARCHITECTURE.md"},
			&cli.BoolFlag{Name: "force", Usage: "Overwrite an already-initialized project"},
		},
		Action: func(c *cli.Context) error {
			root, _, err := openWorkspace(c)
			if err != nil {
				return err
			}

			if scaffold.IsInitialized(root) && !c.Bool("force") {
				return errors.NewAlreadyInitialized(root.Base())
			}

			name := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if name == "" {
				name = orchestrate.DefaultProjectName
			}

			if err := scaffold.Generate(root, name, c.String("description")); err != nil {
				return err
			}
			return outputJSON(map[string]any{
				"initialized": true,
				"project":     name,
				"root":        root.Base(),
			})
		},
	}
}

// contextCmd creates the context command, printing the assembled snapshot.
func contextCmd() *cli.Command {
	return &cli.Command{
		Name:  "context",
		Usage: "Print the context snapshot the agent would receive",
		Flags: []cli.Flag{rootFlag},
		Action: func(c *cli.Context) error {
			root, cfg, err := openWorkspace(c)
			if err != nil {
				return err
			}

			snap := snapshot.Assemble(c.Context, run.NewOSRunner(), root, cfg, session.NewStore(root))
			return outputJSON(snap)
		},
	}
}

// historyCmd creates the history command over the turn ledger.
func historyCmd() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recent turns from the turn ledger",
		Flags: []cli.Flag{
			rootFlag,
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 20, Usage: "Maximum turns to list"},
		},
		Action: func(c *cli.Context) error {
			root, _, err := openWorkspace(c)
			if err != nil {
				return err
			}

			ledger, err := index.Init(root.StateDir())
			if err != nil {
				return fmt.Errorf("open turn ledger: %w", err)
			}
			defer ledger.Close()

			turns, err := index.RecentTurns(ledger, c.Int("limit"))
			if err != nil {
				return err
			}
			return outputJSON(map[string]any{"turns": turns})
		},
	}
}

// serveCmd creates the serve command for the local workspace viewer.
func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a local read-only workspace viewer",
		Flags: []cli.Flag{
			rootFlag,
			&cli.StringFlag{Name: "bind", Usage: "Bind address (defaults from config)"},
			&cli.IntFlag{Name: "port", Usage: "Port (defaults from config)"},
		},
		Action: func(c *cli.Context) error {
			root, cfg, err := openWorkspace(c)
			if err != nil {
				return err
			}

			bind := cfg.WebBind
			if c.String("bind") != "" {
				bind = c.String("bind")
			}
			port := cfg.WebPort
			if c.Int("port") != 0 {
				port = c.Int("port")
			}

			srv := web.NewServer(root, cfg, Version, bind, port)
			return web.Run(srv)
		},
	}
}

// outputJSON prints indented JSON to stdout.
func outputJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
