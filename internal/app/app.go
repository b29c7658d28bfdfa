package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"treefs/internal/config"
	"treefs/internal/domain"
	"treefs/internal/services"
	"treefs/internal/state"
	"treefs/internal/tree"
	"treefs/internal/ui"
)

// Run wires the filesystem providers into an explorer and hands the tree
// to the terminal UI. The loaded config is saved back on clean exit.
func Run(cfg config.Config) error {
	fs := services.NewLocalFS()
	volumes := services.NewLocalVolumes()
	explorer := tree.NewExplorer(fs, volumes, tree.Options{
		SymlinkPolicy: cfg.SymlinkPolicy,
	})

	roots := startNodes(cfg, explorer)
	if len(roots) == 0 {
		return fmt.Errorf("no volumes or start path available")
	}

	appState := state.NewState(cfg, roots)
	model := ui.NewModel(appState, explorer)
	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if provider, ok := finalModel.(ui.ConfigProvider); ok {
		if err := config.SaveConfig(provider.ConfigSnapshot()); err != nil {
			fmt.Println("treefs config save error:", err)
		}
	}
	return nil
}

// startNodes roots the tree at the configured path when one is set,
// falling back to the eager per-volume layer otherwise.
func startNodes(cfg config.Config, explorer *tree.Explorer) []*domain.Node {
	if cfg.StartPath != "" {
		if node, ok := explorer.NodeFromPath(cfg.StartPath); ok {
			return []*domain.Node{node}
		}
	}
	return explorer.Roots()
}
