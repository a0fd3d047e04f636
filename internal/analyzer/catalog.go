package analyzer

// artifact is a file or directory whose presence a check probes for.
type artifact struct {
	path  string
	label string
}

// essentialFiles are checked by the structure phase after the git marker.
var essentialFiles = []struct {
	artifact
	category       Category
	recommendation string
}{
	{
		artifact{"README.md", "Documentation"},
		CategoryDocs,
		"Create a comprehensive README.md with project description, installation, and usage instructions",
	},
	{
		artifact{".gitignore", "Git ignore file"},
		CategoryGit,
		"Add .gitignore file to exclude build artifacts and sensitive files",
	},
	{
		artifact{"LICENSE", "License file"},
		CategoryDocs,
		"Add a LICENSE file so others know how the project may be used",
	},
}

// gitMarker marks a version-controlled project.
const gitMarker = ".git"

// manifests maps dependency manifests to the ecosystem they indicate.
var manifests = []artifact{
	{"package.json", "Node.js"},
	{"requirements.txt", "Python (pip)"},
	{"pyproject.toml", "Python (modern)"},
	{"Pipfile", "Python (pipenv)"},
	{"go.mod", "Go"},
	{"Cargo.toml", "Rust"},
	{"pom.xml", "Maven (Java)"},
	{"build.gradle", "Gradle"},
	{"composer.json", "PHP"},
	{"Gemfile", "Ruby"},
}

var lockFiles = []string{"package-lock.json", "yarn.lock", "poetry.lock", "Pipfile.lock"}

var (
	testPatterns = []string{"*test*", "*spec*", "test_*", "*_test.*"}
	testDirs     = []string{"test", "tests", "__tests__", "spec"}
	testConfigs  = []string{"jest.config.js", "pytest.ini", "phpunit.xml", "vitest.config.js"}
)

// ciProviders lists CI/CD configuration locations. Directory entries hold
// one workflow file per pipeline.
var ciProviders = []artifact{
	{".github/workflows", "GitHub Actions"},
	{".gitlab-ci.yml", "GitLab CI"},
	{"Jenkinsfile", "Jenkins"},
	{"azure-pipelines.yml", "Azure Pipelines"},
	{".travis.yml", "Travis CI"},
	{"circle.yml", "CircleCI"},
}

var workflowExtensions = []string{".yml", ".yaml"}

var dockerFiles = []artifact{
	{"Dockerfile", "Dockerfile"},
	{"docker-compose.yml", "Docker Compose"},
	{".dockerignore", "Docker ignore"},
}

const (
	envTemplate    = ".env.example"
	envFile        = ".env"
	securityPolicy = "SECURITY.md"
)

var codeExtensions = []string{
	".py", ".js", ".ts", ".jsx", ".tsx", ".java", ".go",
	".rs", ".php", ".rb", ".cs", ".cpp", ".c",
}

// excludedPaths are matched as substrings anywhere in a relative path.
var excludedPaths = []string{"node_modules", ".git", "dist", "build", "target", "vendor"}

// ScoringChecks returns the number of checks that can award a point. The
// configured max score must not exceed it.
func ScoringChecks() int {
	const (
		gitChecks      = 1
		lockChecks     = 1
		testingChecks  = 3 // test files, test directory, test config
		securityChecks = 3 // env template, no .env, security policy
	)
	return gitChecks + len(essentialFiles) +
		len(manifests) + lockChecks +
		testingChecks +
		len(ciProviders) +
		len(dockerFiles) +
		securityChecks
}
