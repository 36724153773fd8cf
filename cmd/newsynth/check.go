package main

import (
	"fmt"

	"github.com/fwojciec/newsynth"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	return startupCheck(deps)
}

// startupCheck verifies the model service is reachable and the model is
// installed, printing remediation steps to stderr when it is not.
func startupCheck(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Starting Newsynth...")
	if deps.Checker == nil {
		return nil
	}

	if err := deps.Checker.CheckModel(deps.Ctx, deps.Model); err != nil {
		switch newsynth.ErrorCode(err) {
		case newsynth.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "%s\n", errorStyle.Render(fmt.Sprintf("Model %q is not installed", deps.Model)))
		default:
			fmt.Fprintf(deps.Stderr, "%s\n", errorStyle.Render(fmt.Sprintf("%s is not running or not accessible", deps.Provider)))
		}
		fmt.Fprintln(deps.Stderr, "Please start the model service and ensure the model is installed:")
		for _, hint := range startupHints(deps.Provider, deps.Model) {
			fmt.Fprintln(deps.Stderr, hint)
		}
		return fmt.Errorf("startup check failed: %w", err)
	}

	fmt.Fprintln(deps.Stdout, statusStyle.Render(fmt.Sprintf("%s is running with model %s", deps.Provider, deps.Model)))
	return nil
}
