package main

import (
	"fmt"
	"os"

	"github.com/rvasay/atelier/internal/config"
	"github.com/rvasay/atelier/internal/mcp"
	"github.com/rvasay/atelier/internal/workspace"

	"github.com/mark3labs/mcp-go/server"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"chat": true, "init": true, "context": true,
	"history": true, "serve": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
       _       _ _
   __ _| |_ ___| (_) ___ _ __
  / _` + "`" + ` | __/ _ \ | |/ _ \ '__|
 | (_| | ||  __/ | |  __/ |
  \__,_|\__\___|_|_|\___|_|

  Workspace context orchestrator

  Usage: atelier chat <message>
         atelier --help

  MCP server mode requires piped input.`)
}

// workspaceRoot resolves the workspace root for MCP mode from the
// environment, defaulting to the current directory.
func workspaceRoot() workspace.Root {
	if base := os.Getenv("ATELIER_ROOT"); base != "" {
		return workspace.New(base)
	}
	return workspace.New(".")
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// CLI mode: known subcommand, help, or version
	if isCLIMode() {
		app := newCLIApp()
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\nRun 'atelier --help' for usage.\n", os.Args[1])
		os.Exit(1)
	}

	// MCP server mode over stdio
	root := workspaceRoot()
	cfg, err := config.Load(root.StateDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	s := mcp.NewServer(root, cfg, Version)
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "error: MCP server failed: %v\n", err)
		os.Exit(1)
	}
}
