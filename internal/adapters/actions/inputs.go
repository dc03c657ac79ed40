// Package actions adapts the CI runner's facilities: step inputs passed as INPUT_* environment
// variables, step outputs written to the GITHUB_OUTPUT file, and workflow annotations on stdout.
package actions

import (
	"os"
	"strings"
)

// EnvInputs reads step inputs the way the runner passes them: INPUT_<NAME> with the name
// upper-cased and spaces replaced by underscores. Hyphens are kept.
type EnvInputs struct{}

func (EnvInputs) Lookup(name string) (string, bool) {
	return os.LookupEnv(InputEnvName(name))
}

// InputEnvName returns the environment variable carrying input name.
func InputEnvName(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
