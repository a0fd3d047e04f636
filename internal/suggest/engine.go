package suggest

// Engine runs all registered rules against a ProjectContext and collects
// the resulting suggestions.
type Engine struct {
	rules []Rule
}

// NewEngine creates a new suggest engine with all built-in rules registered.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			MissingReadme,
			MissingGitignore,
			MissingTests,
			MissingDockerfile,
			MissingPipeline,
		},
	}
}

// Run executes all registered rules against the given context and returns
// the collected suggestions in rule registration order.
func (e *Engine) Run(ctx *ProjectContext) []Suggestion {
	var all []Suggestion
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	return all
}
