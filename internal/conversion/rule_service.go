// Package conversion implements the two directive pipelines: flat
// deontic rules and hierarchical task trees. Each pipeline owns its
// prompts and schema and drives the oracle through the validated-retry
// protocol in internal/llm.
package conversion

import (
	"context"
	"fmt"

	"github.com/nbarden/edict/internal/domain"
	"github.com/nbarden/edict/internal/llm"
)

// RuleService converts directive text into flat deontic rules.
type RuleService interface {
	Convert(ctx context.Context, text string) ([]domain.Rule, error)
}

type ruleService struct {
	client      llm.LLMClient
	observer    llm.Observer
	maxAttempts int
}

// NewRuleService creates a RuleService backed by an oracle client.
func NewRuleService(client llm.LLMClient, observer llm.Observer, maxAttempts int) RuleService {
	return &ruleService{
		client:      client,
		observer:    observer,
		maxAttempts: maxAttempts,
	}
}

func (s *ruleService) Convert(ctx context.Context, text string) ([]domain.Rule, error) {
	set, err := llm.CallWithRetry[domain.RuleSet](ctx, s.client, s.observer, llm.GenerateRequest{
		Task:         llm.TaskRules,
		SystemPrompt: rulesSystemPrompt,
		UserPrompt:   buildRulesUserPrompt(text),
	}, RuleSetSchema(), s.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("converting directives to rules: %w", err)
	}
	return set.Rules, nil
}
