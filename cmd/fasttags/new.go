package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alucardeht/fasttags/internal/scaffold"
)

var (
	newModule string
	newReset  bool
)

var newCmd = &cobra.Command{
	Use:   "new <dir>",
	Short: "Scaffold a new project",
	Long: `Scaffold a new project: directories, go module, git repository,
starter views, extensions manifest and the first generated route file.

Completed steps are recorded under <dir>/.fasttags, so rerunning the
command after a failure resumes where it stopped.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newModule, "module", "",
		"go module path of the new project (default: directory name)")
	newCmd.Flags().BoolVar(&newReset, "reset", false,
		"forget recorded steps and rerun the whole scaffold")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	state, err := scaffold.OpenState(filepath.Join(dir, ".fasttags", "fasttags.db"))
	if err != nil {
		return fmt.Errorf("open scaffold state: %w", err)
	}
	defer state.Close()

	if newReset {
		if err := state.Reset(dir); err != nil {
			return fmt.Errorf("reset scaffold state: %w", err)
		}
	}

	s := scaffold.New(dir, newModule, state)
	if err := s.Run(cmd.Context()); err != nil {
		return err
	}

	fmt.Printf("Project ready in %s\n", dir)
	return nil
}
