package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbarden/edict/internal/domain"
)

func TestRenderPrompt_Empty(t *testing.T) {
	assert.Equal(t, "", RenderPrompt(domain.Prompt{}))
	assert.Equal(t, "", RenderPrompt(domain.Prompt{Tasks: []domain.Task{}}))
}

func TestRenderPrompt_SingleBareTask(t *testing.T) {
	p := domain.Prompt{Tasks: []domain.Task{{Intent: "Deploy the service"}}}
	assert.Equal(t, "1. Deploy the service", RenderPrompt(p))
}

func TestRenderPrompt_SingleTaskWithMetadata(t *testing.T) {
	p := domain.Prompt{Tasks: []domain.Task{{
		Intent:      "Deploy the service",
		Targets:     []string{"api", "worker"},
		Constraints: []string{"zero downtime"},
		Context:     "after the release freeze",
	}}}

	want := strings.Join([]string{
		"1. Deploy the service",
		"  Targets: api, worker",
		"  Constraints: zero downtime",
		"  Context: after the release freeze",
	}, "\n")
	assert.Equal(t, want, RenderPrompt(p))
}

func TestRenderPrompt_ConnectorTree(t *testing.T) {
	p := domain.Prompt{Tasks: []domain.Task{
		{
			Intent:  "Root",
			Targets: []string{"a", "b"},
			Subtasks: []domain.Task{
				{
					Intent:   "Child",
					Context:  "c",
					Subtasks: []domain.Task{{Intent: "Grandchild"}},
				},
			},
		},
		{Intent: "Second"},
	}}

	want := strings.Join([]string{
		"1. Root",
		"│  > Targets: a, b",
		"│",
		"├──┬ 2. Child",
		"│  │  > Context: c",
		"│  │",
		"│  └── 3. Grandchild",
		"│",
		"└── 4. Second",
	}, "\n")
	assert.Equal(t, want, RenderPrompt(p))
}

func TestRenderPrompt_PreOrderNumberingAcrossForest(t *testing.T) {
	p := domain.Prompt{Tasks: []domain.Task{
		{
			Intent: "First",
			Subtasks: []domain.Task{
				{Intent: "First sub one"},
				{Intent: "First sub two"},
			},
		},
		{Intent: "Second"},
		{Intent: "Third"},
	}}

	out := RenderPrompt(p)
	lines := strings.Split(out, "\n")

	// A node is numbered before its subtasks and its subtasks before the
	// next top-level task.
	ordered := []string{"1. First", "2. First sub one", "3. First sub two", "4. Second", "5. Third"}
	i := 0
	for _, line := range lines {
		if i < len(ordered) && strings.Contains(line, ordered[i]) {
			i++
		}
	}
	assert.Equal(t, len(ordered), i, "labels must appear in pre-order:\n%s", out)
}

func TestRenderPrompt_LaterTopLevelTasksHangUnderFirst(t *testing.T) {
	p := domain.Prompt{Tasks: []domain.Task{
		{Intent: "First"},
		{Intent: "Second"},
		{Intent: "Third"},
	}}

	want := strings.Join([]string{
		"1. First",
		"│",
		"├── 2. Second",
		"│",
		"└── 3. Third",
	}, "\n")
	assert.Equal(t, want, RenderPrompt(p))
}

func TestRenderPrompt_SiblingMetadataAlignsUnderOwnBar(t *testing.T) {
	p := domain.Prompt{Tasks: []domain.Task{
		{
			Intent: "Root",
			Subtasks: []domain.Task{
				{Intent: "Alpha", Targets: []string{"x"}},
				{Intent: "Beta"},
			},
		},
	}}

	want := strings.Join([]string{
		"1. Root",
		"│",
		"├── 2. Alpha",
		"│  │  > Targets: x",
		"│",
		"└── 3. Beta",
	}, "\n")
	assert.Equal(t, want, RenderPrompt(p))
}

func TestRenderPrompt_Deterministic(t *testing.T) {
	p := domain.Prompt{Tasks: []domain.Task{
		{
			Intent:  "Root",
			Targets: []string{"a"},
			Subtasks: []domain.Task{
				{Intent: "Child", Subtasks: []domain.Task{{Intent: "Leaf"}}},
			},
		},
		{Intent: "Tail"},
	}}

	first := RenderPrompt(p)
	require.NotEmpty(t, first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, RenderPrompt(p))
	}
}

func TestRenderPrompt_NoTrailingNewline(t *testing.T) {
	p := domain.Prompt{Tasks: []domain.Task{
		{Intent: "Root", Subtasks: []domain.Task{{Intent: "Child"}}},
	}}
	out := RenderPrompt(p)
	assert.False(t, strings.HasSuffix(out, "\n"))
}
