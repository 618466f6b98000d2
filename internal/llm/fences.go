package llm

import "strings"

// StripSurroundingFence removes a markdown code fence wrapped around the
// whole payload, if present. The opening fence may carry a language tag
// and the closing fence may be absent; inner newlines are preserved
// exactly. Text without a surrounding fence is returned trimmed but
// otherwise unchanged.
func StripSurroundingFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}

	body := t[3:]
	if i := strings.IndexByte(body, '\n'); i >= 0 && isFenceTag(strings.TrimSpace(body[:i])) {
		body = body[i+1:]
	}

	body = strings.TrimRight(body, " \t\r\n")
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}

// isFenceTag reports whether s looks like a fence language tag ("json",
// "yaml", "") rather than payload that happens to follow the backticks.
func isFenceTag(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
