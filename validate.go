package bingo

import "regexp"

var (
	// An optional uppercase keyword, a space, then an operand: "WHERE blog_id = :id".
	conditionPattern = regexp.MustCompile(`([A-Z]*) ([:?a-zA-Z0-9_\-]*)`)

	// A lowercase column, a space, then an operand: "blog_title = :title".
	assignmentPattern = regexp.MustCompile(`([a-z_\-]*) ([:?a-zA-Z0-9]*)`)

	rawQueryPattern = regexp.MustCompile(`^[0-9a-zA-Z_\-:.*\s]+`)

	placeholderPattern = regexp.MustCompile(`^[:?][a-zA-Z_]*$`)
)

func validateCondition(condition, operation string) (string, error) {
	if condition == "" {
		return "", nil
	}
	if !conditionPattern.MatchString(condition) {
		return "", ErrInvalidCondition{condition, operation}
	}
	return condition, nil
}

// validateAssignment checks the conditions taken by update and delete, which report
// ErrInvalidParameter rather than ErrInvalidCondition.
func validateAssignment(condition, operation string) (string, error) {
	if !assignmentPattern.MatchString(condition) {
		return "", ErrInvalidParameter{condition, operation}
	}
	return condition, nil
}

func validateRawQuery(query, operation string) (string, error) {
	if !rawQueryPattern.MatchString(query) {
		return "", ErrInvalidQuery{query, operation}
	}
	return query, nil
}

func validPlaceholder(placeholder string) bool {
	return placeholderPattern.MatchString(placeholder)
}

// filterPlaceholders drops anything that is not a ":name" or "?" placeholder.
func filterPlaceholders(placeholders []string) []string {
	valid := make([]string, 0, len(placeholders))
	for _, p := range placeholders {
		if validPlaceholder(p) {
			valid = append(valid, p)
		}
	}
	return valid
}
