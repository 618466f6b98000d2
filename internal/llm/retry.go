package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nbarden/edict/internal/schema"
)

// Outcome classifies the result of evaluating one oracle response.
type Outcome int

const (
	// OutcomeSucceeded means the response parsed and validated; the
	// payload is ready to decode.
	OutcomeSucceeded Outcome = iota
	// OutcomeRetryable means the content was unusable (empty, malformed
	// JSON, schema mismatch) and a corrective prompt may fix it.
	OutcomeRetryable
	// OutcomeFatal means the response cannot improve with a retry.
	OutcomeFatal
)

// Evaluation is the pure transition result for one attempt: the next
// state of the retry loop given an oracle response.
type Evaluation struct {
	Outcome Outcome
	Payload string // cleaned JSON text, set on success
	Failure string // human-readable failure, set otherwise
	Err     error  // sentinel classifying the failure
}

// EvaluateResponse classifies a single oracle response against a schema.
// It is a pure function of its inputs, so the retry protocol can be
// tested without a live oracle. A nil response is the transport saying
// "no payload", which is fatal.
func EvaluateResponse(resp *GenerateResponse, sch *schema.Schema) Evaluation {
	if resp == nil {
		return Evaluation{
			Outcome: OutcomeFatal,
			Failure: "oracle returned no response payload",
			Err:     ErrOracleUnavailable,
		}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return Evaluation{
			Outcome: OutcomeRetryable,
			Failure: "the response contained no text",
			Err:     ErrEmptyResponse,
		}
	}

	cleaned := StripSurroundingFence(text)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return Evaluation{
			Outcome: OutcomeRetryable,
			Failure: fmt.Sprintf("the response is not valid JSON: %v", err),
			Err:     ErrInvalidJSON,
		}
	}

	if issues := sch.Validate(parsed); len(issues) > 0 {
		return Evaluation{
			Outcome: OutcomeRetryable,
			Failure: "the JSON does not match the required shape:\n" + issueBullets(issues),
			Err:     ErrSchemaMismatch,
		}
	}

	return Evaluation{Outcome: OutcomeSucceeded, Payload: cleaned}
}

// CorrectivePrompt builds the follow-up prompt for a retryable failure.
// It embeds the specific failure so the oracle can repair its output.
func CorrectivePrompt(failure string) string {
	return fmt.Sprintf(
		"Your previous reply could not be used:\n%s\n\nReturn ONLY the corrected JSON object. No markdown fences, no commentary, no tool calls.",
		failure)
}

// CallWithRetry drives the oracle until it produces schema-conformant
// JSON or the attempt budget runs out. Transport and oracle-reported
// errors are fatal on first occurrence; content failures are retried
// with a corrective prompt built from the specific failure. Attempts are
// strictly sequential: each corrective prompt depends on the previous
// attempt's failure. The attempt counter and last error are local to the
// call; the observer receives exactly one event per invocation.
func CallWithRetry[T any](ctx context.Context, client LLMClient, observer Observer, req GenerateRequest, sch *schema.Schema, maxAttempts int) (T, error) {
	var zero T
	if observer == nil {
		observer = NoopObserver{}
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	start := time.Now()
	event := CallEvent{
		ConversionID: uuid.NewString(),
		Task:         req.Task,
	}
	finish := func(err error) {
		event.LatencyMs = time.Since(start).Milliseconds()
		event.Success = err == nil
		event.ErrorCode = errorCode(err)
		observer.OnCallComplete(event)
	}

	prompt := req.UserPrompt
	lastFailure := ""

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		event.Attempts = attempt

		attemptReq := req
		attemptReq.UserPrompt = prompt
		resp, err := client.Generate(ctx, attemptReq)
		if err != nil {
			finish(err)
			return zero, err
		}
		if resp != nil && resp.Model != "" {
			event.Model = resp.Model
		}

		ev := EvaluateResponse(resp, sch)
		switch ev.Outcome {
		case OutcomeSucceeded:
			var out T
			if err := json.Unmarshal([]byte(ev.Payload), &out); err != nil {
				// Conformant JSON that still fails Go decoding means the
				// schema is looser than the target type; treat like a
				// schema mismatch and let the oracle try again.
				lastFailure = fmt.Sprintf("the JSON could not be decoded: %v", err)
				prompt = CorrectivePrompt(lastFailure)
				continue
			}
			finish(nil)
			return out, nil

		case OutcomeFatal:
			err := fmt.Errorf("%w: %s", ev.Err, ev.Failure)
			finish(err)
			return zero, err

		case OutcomeRetryable:
			lastFailure = ev.Failure
			prompt = CorrectivePrompt(lastFailure)
		}
	}

	err := fmt.Errorf("%w after %d attempts: %s", ErrRetryExhausted, maxAttempts, lastFailure)
	finish(err)
	return zero, err
}

func issueBullets(issues []schema.Issue) string {
	var b strings.Builder
	for _, issue := range issues {
		b.WriteString("- ")
		b.WriteString(issue.String())
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
