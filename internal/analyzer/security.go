package analyzer

// analyzeSecurity checks basic secret hygiene. A committed .env is the one
// check where presence warns and absence passes.
func (a *Analyzer) analyzeSecurity() error {
	if a.exists(envTemplate) {
		a.recordPass(CategorySecurity, "Environment template (.env.example) exists")
	} else {
		a.recordWarn(CategorySecurity, "No .env.example template",
			"Add a .env.example listing required variables without real values")
	}

	if a.exists(envFile) {
		a.recordWarn(CategorySecurity, ".env file in repository (security risk)",
			"Remove .env from repository and add to .gitignore for security")
	} else {
		a.recordPass(CategorySecurity, "No .env file in repository")
	}

	if a.exists(securityPolicy) {
		a.recordPass(CategorySecurity, "Security policy documented")
	}
	return nil
}
