// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kasal-project/kasal/ent/enginesetting"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/ent/executionlog"
	"github.com/kasal-project/kasal/ent/executiontrace"
	"github.com/kasal-project/kasal/ent/flowrecord"
	"github.com/kasal-project/kasal/ent/group"
	"github.com/kasal-project/kasal/ent/groupmembership"
	"github.com/kasal-project/kasal/ent/memoryconfig"
	"github.com/kasal-project/kasal/ent/schema"
	"github.com/kasal-project/kasal/ent/toolrecord"
	"github.com/kasal-project/kasal/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	enginesettingFields := schema.EngineSetting{}.Fields()
	_ = enginesettingFields
	// enginesettingDescUpdatedAt is the schema descriptor for updated_at field.
	enginesettingDescUpdatedAt := enginesettingFields[3].Descriptor()
	// enginesetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	enginesetting.DefaultUpdatedAt = enginesettingDescUpdatedAt.Default.(func() time.Time)
	// enginesetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	enginesetting.UpdateDefaultUpdatedAt = enginesettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescIsStopping is the schema descriptor for is_stopping field.
	executionDescIsStopping := executionFields[4].Descriptor()
	// execution.DefaultIsStopping holds the default value on creation for the is_stopping field.
	execution.DefaultIsStopping = executionDescIsStopping.Default.(bool)
	// executionDescCreatedAt is the schema descriptor for created_at field.
	executionDescCreatedAt := executionFields[6].Descriptor()
	// execution.DefaultCreatedAt holds the default value on creation for the created_at field.
	execution.DefaultCreatedAt = executionDescCreatedAt.Default.(func() time.Time)
	executionlogFields := schema.ExecutionLog{}.Fields()
	_ = executionlogFields
	// executionlogDescTimestamp is the schema descriptor for timestamp field.
	executionlogDescTimestamp := executionlogFields[2].Descriptor()
	// executionlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	executionlog.DefaultTimestamp = executionlogDescTimestamp.Default.(func() time.Time)
	executiontraceFields := schema.ExecutionTrace{}.Fields()
	_ = executiontraceFields
	// executiontraceDescCreatedAt is the schema descriptor for created_at field.
	executiontraceDescCreatedAt := executiontraceFields[8].Descriptor()
	// executiontrace.DefaultCreatedAt holds the default value on creation for the created_at field.
	executiontrace.DefaultCreatedAt = executiontraceDescCreatedAt.Default.(func() time.Time)
	flowrecordFields := schema.FlowRecord{}.Fields()
	_ = flowrecordFields
	// flowrecordDescCreatedAt is the schema descriptor for created_at field.
	flowrecordDescCreatedAt := flowrecordFields[6].Descriptor()
	// flowrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	flowrecord.DefaultCreatedAt = flowrecordDescCreatedAt.Default.(func() time.Time)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupFields[3].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	groupmembershipFields := schema.GroupMembership{}.Fields()
	_ = groupmembershipFields
	// groupmembershipDescCreatedAt is the schema descriptor for created_at field.
	groupmembershipDescCreatedAt := groupmembershipFields[3].Descriptor()
	// groupmembership.DefaultCreatedAt holds the default value on creation for the created_at field.
	groupmembership.DefaultCreatedAt = groupmembershipDescCreatedAt.Default.(func() time.Time)
	memoryconfigFields := schema.MemoryConfig{}.Fields()
	_ = memoryconfigFields
	// memoryconfigDescShortTermEnabled is the schema descriptor for short_term_enabled field.
	memoryconfigDescShortTermEnabled := memoryconfigFields[2].Descriptor()
	// memoryconfig.DefaultShortTermEnabled holds the default value on creation for the short_term_enabled field.
	memoryconfig.DefaultShortTermEnabled = memoryconfigDescShortTermEnabled.Default.(bool)
	// memoryconfigDescLongTermEnabled is the schema descriptor for long_term_enabled field.
	memoryconfigDescLongTermEnabled := memoryconfigFields[3].Descriptor()
	// memoryconfig.DefaultLongTermEnabled holds the default value on creation for the long_term_enabled field.
	memoryconfig.DefaultLongTermEnabled = memoryconfigDescLongTermEnabled.Default.(bool)
	// memoryconfigDescEntityEnabled is the schema descriptor for entity_enabled field.
	memoryconfigDescEntityEnabled := memoryconfigFields[4].Descriptor()
	// memoryconfig.DefaultEntityEnabled holds the default value on creation for the entity_enabled field.
	memoryconfig.DefaultEntityEnabled = memoryconfigDescEntityEnabled.Default.(bool)
	// memoryconfigDescIsActive is the schema descriptor for is_active field.
	memoryconfigDescIsActive := memoryconfigFields[7].Descriptor()
	// memoryconfig.DefaultIsActive holds the default value on creation for the is_active field.
	memoryconfig.DefaultIsActive = memoryconfigDescIsActive.Default.(bool)
	// memoryconfigDescCreatedAt is the schema descriptor for created_at field.
	memoryconfigDescCreatedAt := memoryconfigFields[8].Descriptor()
	// memoryconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryconfig.DefaultCreatedAt = memoryconfigDescCreatedAt.Default.(func() time.Time)
	toolrecordFields := schema.ToolRecord{}.Fields()
	_ = toolrecordFields
	// toolrecordDescKind is the schema descriptor for kind field.
	toolrecordDescKind := toolrecordFields[2].Descriptor()
	// toolrecord.DefaultKind holds the default value on creation for the kind field.
	toolrecord.DefaultKind = toolrecordDescKind.Default.(string)
	// toolrecordDescEnabled is the schema descriptor for enabled field.
	toolrecordDescEnabled := toolrecordFields[4].Descriptor()
	// toolrecord.DefaultEnabled holds the default value on creation for the enabled field.
	toolrecord.DefaultEnabled = toolrecordDescEnabled.Default.(bool)
	// toolrecordDescCreatedAt is the schema descriptor for created_at field.
	toolrecordDescCreatedAt := toolrecordFields[5].Descriptor()
	// toolrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolrecord.DefaultCreatedAt = toolrecordDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
