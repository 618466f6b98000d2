package conversion

import (
	"github.com/nbarden/edict/internal/domain"
	"github.com/nbarden/edict/internal/schema"
)

// RuleSetSchema declares the expected shape of a rules conversion:
// an object with a required array of rule objects.
func RuleSetSchema() *schema.Schema {
	rule := schema.Object(map[string]schema.Field{
		"strength": {Required: true, Schema: schema.Enum(domain.StrengthValues...)},
		"action":   {Required: true, Schema: schema.String()},
		"target":   {Required: true, Schema: schema.String()},
		"context":  {Schema: schema.String()},
		"reason":   {Required: true, Schema: schema.String()},
	})
	return schema.Object(map[string]schema.Field{
		"rules": {Required: true, Schema: schema.Array(rule)},
	})
}

// PromptSchema declares the expected shape of a tasks conversion. The
// task node refers to itself through subtasks, so the reference is
// resolved lazily at validation time rather than expanded eagerly.
func PromptSchema() *schema.Schema {
	var task *schema.Schema
	task = schema.Object(map[string]schema.Field{
		"intent":      {Required: true, Schema: schema.String()},
		"targets":     {Schema: schema.Array(schema.String())},
		"constraints": {Schema: schema.Array(schema.String())},
		"context":     {Schema: schema.String()},
		"subtasks": {Schema: schema.Array(schema.Ref(func() *schema.Schema {
			return task
		}))},
	})
	return schema.Object(map[string]schema.Field{
		"tasks": {Required: true, Schema: schema.Array(task)},
	})
}
