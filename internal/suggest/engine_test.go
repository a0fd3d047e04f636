package suggest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectContext creates the given files under a temp dir and returns a
// context rooted there. Keys ending in "/" create empty directories.
func projectContext(t *testing.T, files ...string) *ProjectContext {
	t.Helper()
	root := t.TempDir()
	for _, name := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x\n"), 0o644))
	}
	return &ProjectContext{FS: afero.NewBasePathFs(afero.NewOsFs(), root)}
}

func titles(suggestions []Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Title)
	}
	return out
}

// --- Engine.Run ---

func TestEngineRun_EmptyProjectGetsEveryQuickWinInOrder(t *testing.T) {
	suggestions := NewEngine().Run(projectContext(t))

	assert.Equal(t, []string{
		"Create comprehensive README.md",
		"Add .gitignore file",
		"Implement automated testing",
		"Containerize with Docker",
		"Set up CI/CD pipeline",
	}, titles(suggestions))

	for _, s := range suggestions {
		assert.NotEmpty(t, s.Category)
		assert.NotEmpty(t, s.Description)
	}
}

func TestEngineRun_CompleteProjectGetsNone(t *testing.T) {
	ctx := projectContext(t,
		"README.md",
		".gitignore",
		"internal/app/app_test.go",
		"Dockerfile",
		".github/workflows/ci.yml",
	)

	assert.Empty(t, NewEngine().Run(ctx))
}

func TestEngineRun_Idempotent(t *testing.T) {
	ctx := projectContext(t, "README.md", "Jenkinsfile")
	engine := NewEngine()

	assert.Equal(t, engine.Run(ctx), engine.Run(ctx))
}

func TestEngineRun_NoRules(t *testing.T) {
	engine := &Engine{rules: nil}
	assert.Empty(t, engine.Run(projectContext(t)))
}

func TestEngineRun_CustomRule(t *testing.T) {
	customRule := func(ctx *ProjectContext) []Suggestion {
		return []Suggestion{{Category: "custom", Priority: PriorityCritical, Title: "Custom suggestion"}}
	}
	engine := &Engine{rules: []Rule{customRule}}

	suggestions := engine.Run(projectContext(t))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "custom", suggestions[0].Category)
}

func TestNewEngine_HasAllRules(t *testing.T) {
	assert.Len(t, NewEngine().rules, 5)
}

// --- Rules ---

func TestMissingTests(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  bool
	}{
		{"no tests", []string{"main.go"}, true},
		{"test file", []string{"pkg/handler_test.go"}, false},
		{"test directory only", []string{"tests/"}, false},
		{"spec file does not count", []string{"user.spec.ts"}, true},
		{"hidden test file ignored", []string{".github/workflows/test.yml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MissingTests(projectContext(t, tc.files...))
			assert.Equal(t, tc.want, len(got) == 1)
		})
	}
}

func TestMissingPipeline(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  bool
	}{
		{"none", nil, true},
		{"github workflows dir", []string{".github/workflows/"}, false},
		{"gitlab", []string{".gitlab-ci.yml"}, false},
		{"jenkins", []string{"Jenkinsfile"}, false},
		{"travis is not a quick-win provider", []string{".travis.yml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MissingPipeline(projectContext(t, tc.files...))
			assert.Equal(t, tc.want, len(got) == 1)
		})
	}
}

func TestPresenceRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		file string
	}{
		{"readme", MissingReadme, "README.md"},
		{"gitignore", MissingGitignore, ".gitignore"},
		{"dockerfile", MissingDockerfile, "Dockerfile"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, tc.rule(projectContext(t)), 1)
			assert.Empty(t, tc.rule(projectContext(t, tc.file)))
		})
	}
}
