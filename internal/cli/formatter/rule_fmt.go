package formatter

import (
	"strings"

	"github.com/nbarden/edict/internal/domain"
)

// FormatRule renders one deontic rule as a single imperative sentence.
// Forbidden rules always carry the negation directly before the action;
// they must never read as bare positive imperatives.
func FormatRule(r domain.Rule) string {
	phrase := strings.TrimSpace(r.Action)
	if t := strings.TrimSpace(r.Target); t != "" {
		phrase += " " + t
	}

	var s string
	switch r.Strength {
	case domain.StrengthObligatory:
		s = "Always " + phrase
	case domain.StrengthForbidden:
		s = "Never " + phrase
	case domain.StrengthPermissible:
		s = "You may " + phrase
	case domain.StrengthOptional:
		s = "Optionally, " + phrase
	case domain.StrengthSupererogatory:
		s = "Ideally, " + phrase
	case domain.StrengthIndifferent:
		s = "You may " + phrase + " or not"
	case domain.StrengthOmissible:
		s = "You need not " + phrase
	default:
		s = phrase
	}

	if c := strings.TrimSpace(r.Context); c != "" {
		s += " when " + c
	}
	if reason := strings.TrimSpace(r.Reason); reason != "" {
		s += " (" + reason + ")"
	}
	return s
}

// RenderRules renders a rule list as a bulleted block, one rule per line.
func RenderRules(rules []domain.Rule) string {
	lines := make([]string, 0, len(rules))
	for _, r := range rules {
		lines = append(lines, "- "+FormatRule(r))
	}
	return strings.Join(lines, "\n")
}
