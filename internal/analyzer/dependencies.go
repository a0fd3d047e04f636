package analyzer

// analyzeDependencies detects every ecosystem with a manifest in the project
// root, then looks for a lock file.
func (a *Analyzer) analyzeDependencies() error {
	var detected []string
	for _, m := range manifests {
		if a.exists(m.path) {
			a.recordPass(CategoryDeps, m.label+" project detected")
			detected = append(detected, m.label)
		}
	}
	a.metrics.Ecosystems = detected

	if len(detected) == 0 {
		a.recordWarn(CategoryDeps, "No standard dependency file detected",
			"Declare dependencies in your ecosystem's manifest (package.json, go.mod, pyproject.toml, ...)")
	}

	if a.anyExists(lockFiles...) {
		a.recordPass(CategoryDeps, "Dependency lock file present")
	} else {
		a.recordWarn(CategoryDeps, "No dependency lock file found",
			"Generate dependency lock file for reproducible builds")
	}
	return nil
}
