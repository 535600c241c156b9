package qa

import "strings"

// normalizeQuestion canonicalizes a question for cache keying: lower-cased,
// whitespace collapsed, trailing punctuation dropped.
func normalizeQuestion(question string) string {
	fields := strings.Fields(strings.ToLower(question))
	joined := strings.Join(fields, " ")
	return strings.TrimRight(joined, "?!. ")
}
