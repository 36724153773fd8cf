package main

import (
	"fmt"
	"strings"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	topic := strings.TrimSpace(strings.Join(c.Topic, " "))
	if topic == "" {
		return fmt.Errorf("topic required")
	}

	if err := startupCheck(deps); err != nil {
		return err
	}

	report := runTopic(deps, topic)
	if report.SearchErr != nil {
		return fmt.Errorf("search failed: %w", report.SearchErr)
	}
	return nil
}
