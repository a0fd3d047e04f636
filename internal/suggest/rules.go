package suggest

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/blackwell-systems/devopsaudit/internal/scanner"
)

// pipelineConfigs are the CI/CD locations that satisfy MissingPipeline.
var pipelineConfigs = []string{".github/workflows", ".gitlab-ci.yml", "Jenkinsfile"}

// MissingReadme suggests writing a README when none exists.
func MissingReadme(ctx *ProjectContext) []Suggestion {
	if ctx.exists("README.md") {
		return nil
	}
	return []Suggestion{{
		Category: "docs",
		Priority: PriorityHigh,
		Title:    "Create comprehensive README.md",
		Description: "Document what the project does, how to install it and how to use it. " +
			"A README is the first thing contributors and operators read.",
	}}
}

// MissingGitignore suggests adding a .gitignore.
func MissingGitignore(ctx *ProjectContext) []Suggestion {
	if ctx.exists(".gitignore") {
		return nil
	}
	return []Suggestion{{
		Category:    "git",
		Priority:    PriorityHigh,
		Title:       "Add .gitignore file",
		Description: "Exclude build artifacts, dependency directories and local secrets from version control.",
	}}
}

// MissingTests suggests automated testing when nothing in the tree has
// "test" in its name. Directories count as well as files.
func MissingTests(ctx *ProjectContext) []Suggestion {
	entries, err := scanner.Find(ctx.FS, scanner.Options{
		Match:  scanner.Patterns("*test*"),
		Logger: ctx.Logger,
	})
	if err != nil {
		ctx.logger().Debug("probing for tests", "err", err)
	}
	if len(entries) > 0 {
		return nil
	}
	return []Suggestion{{
		Category:    "testing",
		Priority:    PriorityCritical,
		Title:       "Implement automated testing",
		Description: "Add unit tests for core logic and run them on every change.",
	}}
}

// MissingDockerfile suggests containerizing the project.
func MissingDockerfile(ctx *ProjectContext) []Suggestion {
	if ctx.exists("Dockerfile") {
		return nil
	}
	return []Suggestion{{
		Category:    "docker",
		Priority:    PriorityMedium,
		Title:       "Containerize with Docker",
		Description: "A Dockerfile gives every environment the same runtime and simplifies deployment.",
	}}
}

// MissingPipeline suggests CI/CD when none of the common providers is
// configured.
func MissingPipeline(ctx *ProjectContext) []Suggestion {
	for _, p := range pipelineConfigs {
		if ctx.exists(p) {
			return nil
		}
	}
	return []Suggestion{{
		Category:    "cicd",
		Priority:    PriorityHigh,
		Title:       "Set up CI/CD pipeline",
		Description: "Run tests and builds automatically on every push with GitHub Actions, GitLab CI or Jenkins.",
	}}
}

func (ctx *ProjectContext) exists(path string) bool {
	ok, err := afero.Exists(ctx.FS, path)
	if err != nil {
		ctx.logger().Debug("probing path", "path", path, "err", err)
	}
	return ok
}

func (ctx *ProjectContext) logger() *slog.Logger {
	if ctx.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return ctx.Logger
}
