package analyzer

// analyzeDocker checks for containerization artifacts. Each missing file
// only warns.
func (a *Analyzer) analyzeDocker() error {
	for _, f := range dockerFiles {
		if a.exists(f.path) {
			a.recordPass(CategoryDocker, f.label+" present")
		} else {
			a.recordWarn(CategoryDocker, f.label+" missing",
				"Containerize your application with Docker for consistent deployments")
		}
	}
	return nil
}
