package bingo

// Condition validates a clause such as "WHERE blog_title LIKE :title" so that it can be
// reused across several builders. The clause is returned unchanged, so Condition is
// idempotent for any text it accepts. An empty clause is valid.
func Condition(condition string) (string, error) {
	return validateCondition(condition, "Condition")
}
