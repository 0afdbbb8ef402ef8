// Command yojana turns a natural-language change request into an
// LLM-generated execution plan and applies it to the working tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nishant/yojana/internal/llm"
	"github.com/nishant/yojana/internal/observability"
	"github.com/nishant/yojana/internal/store"
	"github.com/nishant/yojana/internal/workspace"
	"github.com/nishant/yojana/pkg/config"
)

var (
	flagConfig   string
	flagRoot     string
	flagProvider string
	flagModel    string
	flagVerbose  bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "yojana",
		Short:         "Plan-driven code changes powered by an LLM",
		Long:          "yojana turns a natural-language change request (optionally annotated with @path file references) into a structured execution plan, and can apply that plan by creating and rewriting files through further LLM calls.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ~/.yojana/config.json)")
	root.PersistentFlags().StringVarP(&flagRoot, "root", "C", ".", "workspace root to plan over")
	root.PersistentFlags().StringVar(&flagProvider, "provider", "", "override the configured provider")
	root.PersistentFlags().StringVar(&flagModel, "model", "", "override the provider's model")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newPlanCmd(), newApplyCmd(), newTreeCmd(), newHistoryCmd(), newConfigureCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the collaborators a command needs.
type app struct {
	cfg     *config.Config
	ws      *workspace.Workspace
	client  llm.Client
	history *store.HistoryStore
	logger  *observability.Logger
}

func newApp() (*app, error) {
	cfgPath, err := configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	ws, err := workspace.New(flagRoot)
	if err != nil {
		return nil, err
	}

	client, err := newClient(cfg, ws)
	if err != nil {
		return nil, err
	}

	history, err := openHistory(cfg)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		ws:      ws,
		client:  client,
		history: history,
		logger:  observability.NewLogger(flagVerbose),
	}, nil
}

func (a *app) close() {
	a.logger.Sync()
	if a.history != nil {
		_ = a.history.Close()
	}
}

func configPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	return config.DefaultPath()
}

func loadConfigAt(path string) (*config.Config, error) {
	return config.LoadConfig(path)
}

// newClient resolves the provider by layering project settings and command
// flags over the user config, most specific last.
func newClient(cfg *config.Config, ws *workspace.Workspace) (llm.Client, error) {
	name, pCfg := cfg.GetDefaultProvider()

	if s := ws.Settings(); s.Provider != "" {
		name = s.Provider
		pCfg = cfg.Providers[name]
	}
	if s := ws.Settings(); s.Model != "" {
		pCfg.Model = s.Model
	}
	if flagProvider != "" {
		name = flagProvider
		pCfg = cfg.Providers[name]
	}
	if flagModel != "" {
		pCfg.Model = flagModel
	}

	if name == "" {
		return nil, fmt.Errorf("no enabled provider found; run `yojana configure` or set GEMINI_API_KEY")
	}
	return llm.New(name, pCfg)
}

func openHistory(cfg *config.Config) (*store.HistoryStore, error) {
	path := cfg.Memory.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".yojana", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return store.NewHistoryStore(path)
}
