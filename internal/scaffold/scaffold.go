// Package scaffold bootstraps a new project: directories, go module,
// git repository, starter views and the first generated route file.
// Completed steps are recorded so an interrupted run resumes instead of
// redoing work.
package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alucardeht/fasttags/internal/config"
	"github.com/alucardeht/fasttags/internal/logger"
	"github.com/alucardeht/fasttags/internal/urlgen"
)

var log = logger.ForComponent("scaffold")

type Scaffolder struct {
	// ProjectDir is the directory the project is created in.
	ProjectDir string
	// Module is the go module path of the new project.
	Module string

	state *StateStore
}

func New(projectDir, module string, state *StateStore) *Scaffolder {
	if module == "" {
		module = filepath.Base(projectDir)
	}
	return &Scaffolder{ProjectDir: projectDir, Module: module, state: state}
}

type step struct {
	name string
	run  func(s *Scaffolder, ctx context.Context) error
}

var steps = []step{
	{"create-dirs", (*Scaffolder).createDirs},
	{"go-mod-init", (*Scaffolder).goModInit},
	{"git-init", (*Scaffolder).gitInit},
	{"write-files", (*Scaffolder).writeFiles},
	{"generate-routes", (*Scaffolder).generateRoutes},
	{"go-mod-tidy", (*Scaffolder).goModTidy},
	{"git-commit", (*Scaffolder).gitCommit},
}

// Run executes every remaining step in order. The first failure stops
// the run; already completed steps are skipped on the next attempt.
func (s *Scaffolder) Run(ctx context.Context) error {
	log.Info("scaffolding project", "dir", s.ProjectDir, "module", s.Module)

	for _, st := range steps {
		done, err := s.state.Done(s.ProjectDir, st.name)
		if err != nil {
			return fmt.Errorf("read step state: %w", err)
		}
		if done {
			log.Info("step already done, skipping", "step", st.name)
			continue
		}

		log.Info("running step", "step", st.name)
		if err := st.run(s, ctx); err != nil {
			return fmt.Errorf("step %s: %w", st.name, err)
		}
		if err := s.state.MarkDone(s.ProjectDir, st.name); err != nil {
			return fmt.Errorf("record step %s: %w", st.name, err)
		}
	}

	log.Info("project ready", "dir", s.ProjectDir)
	return nil
}

func (s *Scaffolder) createDirs(ctx context.Context) error {
	for _, dir := range []string{"", "views", "routes"} {
		if err := os.MkdirAll(filepath.Join(s.ProjectDir, dir), 0755); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scaffolder) goModInit(ctx context.Context) error {
	if _, err := os.Stat(filepath.Join(s.ProjectDir, "go.mod")); err == nil {
		log.Warn("go.mod already exists, skipping init")
		return nil
	}
	return s.runCommand(ctx, "go", "mod", "init", s.Module)
}

func (s *Scaffolder) gitInit(ctx context.Context) error {
	if _, err := os.Stat(filepath.Join(s.ProjectDir, ".git")); err == nil {
		log.Warn("git repository already exists, skipping init")
		return nil
	}
	return s.runCommand(ctx, "git", "init")
}

func (s *Scaffolder) writeFiles(ctx context.Context) error {
	files := map[string]string{
		"main.go":         fmt.Sprintf(mainTemplate, s.Module),
		"views/views.go":  viewsTemplate,
		"extensions.yaml": extensionsTemplate,
		".gitignore":      gitignoreTemplate,
	}
	for name, content := range files {
		path := filepath.Join(s.ProjectDir, name)
		if _, err := os.Stat(path); err == nil {
			log.Warn("file already exists, leaving untouched", "path", path)
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		log.Info("wrote file", "path", path)
	}
	return nil
}

func (s *Scaffolder) generateRoutes(ctx context.Context) error {
	gen := urlgen.New(config.GenerateConfig{
		ViewsDir:    filepath.Join(s.ProjectDir, "views"),
		ViewsImport: s.Module + "/views",
		Output:      filepath.Join(s.ProjectDir, "routes", "routes_gen.go"),
		Package:     "routes",
	})
	_, err := gen.Generate()
	return err
}

func (s *Scaffolder) goModTidy(ctx context.Context) error {
	return s.runCommand(ctx, "go", "mod", "tidy")
}

func (s *Scaffolder) gitCommit(ctx context.Context) error {
	if err := s.runCommand(ctx, "git", "add", "-A"); err != nil {
		return err
	}
	return s.runCommand(ctx, "git", "commit", "-m", "Scaffold project")
}

// runCommand runs a subprocess in the project directory, logging its
// output. A non-zero exit is an error carrying the captured stderr.
func (s *Scaffolder) runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = s.ProjectDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Info("exec", "cmd", name+" "+strings.Join(args, " "))
	err := cmd.Run()

	if out := strings.TrimSpace(stdout.String()); out != "" {
		log.Debug("exec stdout", "cmd", name, "output", out)
	}
	if errOut := strings.TrimSpace(stderr.String()); errOut != "" {
		log.Debug("exec stderr", "cmd", name, "output", errOut)
	}

	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err,
			strings.TrimSpace(stderr.String()))
	}
	return nil
}
