package report

import (
	"fmt"
	"os"

	"github.com/xhhuango/json"
)

// WriteResults marshals the scenario results to a JSON file. Path matrices
// are deliberately excluded; the JSON carries parameters and statistics only.
func WriteResults(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results %s: %w", path, err)
	}
	return nil
}
