package seedfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"faqpilot/internal/domain/qa"
)

// Load reads a FAQ seed set from a YAML file of {question, answer} entries.
func Load(path string) ([]qa.FAQEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []qa.FAQEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	for i, entry := range entries {
		if strings.TrimSpace(entry.Question) == "" || strings.TrimSpace(entry.Answer) == "" {
			return nil, fmt.Errorf("seed entry %d has an empty question or answer", i)
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("seed file %s contains no entries", path)
	}
	return entries, nil
}
