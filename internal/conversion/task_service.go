package conversion

import (
	"context"
	"fmt"

	"github.com/nbarden/edict/internal/domain"
	"github.com/nbarden/edict/internal/llm"
)

// TaskService converts directive text into a hierarchical task prompt.
type TaskService interface {
	Convert(ctx context.Context, text string) (*domain.Prompt, error)
}

type taskService struct {
	client      llm.LLMClient
	observer    llm.Observer
	maxAttempts int
}

// NewTaskService creates a TaskService backed by an oracle client.
func NewTaskService(client llm.LLMClient, observer llm.Observer, maxAttempts int) TaskService {
	return &taskService{
		client:      client,
		observer:    observer,
		maxAttempts: maxAttempts,
	}
}

func (s *taskService) Convert(ctx context.Context, text string) (*domain.Prompt, error) {
	prompt, err := llm.CallWithRetry[domain.Prompt](ctx, s.client, s.observer, llm.GenerateRequest{
		Task:         llm.TaskTasks,
		SystemPrompt: tasksSystemPrompt,
		UserPrompt:   buildTasksUserPrompt(text),
	}, PromptSchema(), s.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("converting directives to tasks: %w", err)
	}
	return &prompt, nil
}
