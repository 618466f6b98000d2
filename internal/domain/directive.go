package domain

// Strength is the deontic modality of a rule: how binding the directive is.
type Strength string

const (
	StrengthObligatory     Strength = "obligatory"
	StrengthForbidden      Strength = "forbidden"
	StrengthPermissible    Strength = "permissible"
	StrengthOptional       Strength = "optional"
	StrengthSupererogatory Strength = "supererogatory"
	StrengthIndifferent    Strength = "indifferent"
	StrengthOmissible      Strength = "omissible"
)

// ValidStrengths is the canonical set of accepted strength strings.
var ValidStrengths = map[string]bool{
	"obligatory": true, "forbidden": true, "permissible": true,
	"optional": true, "supererogatory": true, "indifferent": true,
	"omissible": true,
}

// StrengthValues lists the accepted strengths in a stable order, for
// prompt construction and schema enumerations.
var StrengthValues = []string{
	"obligatory", "forbidden", "permissible", "optional",
	"supererogatory", "indifferent", "omissible",
}

// Rule is a single flat deontic rule extracted from directive text.
// Values are built fresh from validated oracle output and never mutated.
type Rule struct {
	Strength Strength `json:"strength"`
	Action   string   `json:"action"`
	Target   string   `json:"target"`
	Context  string   `json:"context,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

// RuleSet is the oracle's full answer for one rules conversion.
type RuleSet struct {
	Rules []Rule `json:"rules"`
}

// Task is one node of a hierarchical task decomposition. Subtasks nest to
// arbitrary depth; each level is freshly constructed from parsed text, so
// the structure is always a tree.
type Task struct {
	Intent      string   `json:"intent"`
	Targets     []string `json:"targets,omitempty"`
	Constraints []string `json:"constraints,omitempty"`
	Context     string   `json:"context,omitempty"`
	Subtasks    []Task   `json:"subtasks,omitempty"`
}

// Prompt is an ordered sequence of top-level tasks.
type Prompt struct {
	Tasks []Task `json:"tasks"`
}
