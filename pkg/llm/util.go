package llm

import "strings"

// StripCodeFences removes markdown code-fence wrapping that models add
// around JSON despite instructions not to.
func StripCodeFences(response string) string {
	s := strings.TrimSpace(response)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
