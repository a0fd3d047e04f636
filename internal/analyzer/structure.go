package analyzer

// analyzeStructure checks for the git marker and the essential top-level
// files. Missing essentials only warn.
func (a *Analyzer) analyzeStructure() error {
	if a.exists(gitMarker) {
		a.recordPass(CategoryGit, "Git repository detected")
	} else {
		a.recordFail(CategoryGit, "No git repository", "Initialize version control with 'git init' and commit the project")
	}

	for _, f := range essentialFiles {
		if a.exists(f.path) {
			a.recordPass(f.category, f.label+" exists")
		} else {
			a.recordWarn(f.category, f.label+" missing", f.recommendation)
		}
	}
	return nil
}
