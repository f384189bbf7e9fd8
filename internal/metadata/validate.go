package metadata

import (
	"fmt"
	"regexp"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Validate performs the strict metadata check that Extract deliberately
// skips. It reports completeness and format problems without failing the
// caller; the boolean is true when no problems were found.
func Validate(meta Metadata) (bool, []string) {
	var problems []string

	if meta["title"] == "" {
		problems = append(problems, "missing required metadata field: title")
	}

	for _, field := range []string{"created_at", "modified_at"} {
		value := meta[field]
		if value == "" {
			continue
		}
		if _, err := ParseTimestamp(value); err != nil {
			problems = append(problems, fmt.Sprintf("invalid %s format: %v", field, err))
		}
	}

	if v := meta["version"]; v != "" && !versionPattern.MatchString(v) {
		problems = append(problems, fmt.Sprintf("invalid version format: %s (should be X.Y)", v))
	}

	return len(problems) == 0, problems
}
