package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treefs/internal/app"
	"treefs/internal/config"
	"treefs/internal/domain"
)

var (
	startPath     string
	symlinkPolicy string
)

var rootCmd = &cobra.Command{
	Use:   "treefs",
	Short: "Browse the filesystem as a lazily loaded directory tree",
	Long: "treefs shows mounted volumes and their folders as a tree that is\n" +
		"populated on demand, with in-place renaming and new-folder creation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			cfg = config.DefaultConfig()
			fmt.Fprintln(os.Stderr, "treefs config warning:", err)
		}
		if cmd.Flags().Changed("path") {
			cfg.StartPath = startPath
		}
		if cmd.Flags().Changed("symlinks") {
			if !domain.ValidSymlinkPolicy(symlinkPolicy) {
				return fmt.Errorf("invalid symlink policy %q (follow|skip)", symlinkPolicy)
			}
			cfg.SymlinkPolicy = domain.SymlinkPolicy(symlinkPolicy)
		}
		return app.Run(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&startPath, "path", "p", "", "root the tree at this directory instead of the volume list")
	rootCmd.Flags().StringVar(&symlinkPolicy, "symlinks", string(domain.SymlinkFollow), "symlinked directories: follow or skip")
}
