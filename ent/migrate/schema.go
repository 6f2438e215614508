// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EngineSettingsColumns holds the columns for the "engine_settings" table.
	EngineSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "engine", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EngineSettingsTable holds the schema information for the "engine_settings" table.
	EngineSettingsTable = &schema.Table{
		Name:       "engine_settings",
		Columns:    EngineSettingsColumns,
		PrimaryKey: []*schema.Column{EngineSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "enginesetting_engine_key",
				Unique:  true,
				Columns: []*schema.Column{EngineSettingsColumns[1], EngineSettingsColumns[2]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "job_id", Type: field.TypeString},
		{Name: "group_id", Type: field.TypeString},
		{Name: "group_email", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "stopped"}, Default: "pending"},
		{Name: "is_stopping", Type: field.TypeBool, Default: false},
		{Name: "stop_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "partial_results", Type: field.TypeJSON, Nullable: true},
		{Name: "run_name", Type: field.TypeString, Nullable: true},
		{Name: "created_by_email", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "execution_group_id_job_id",
				Unique:  true,
				Columns: []*schema.Column{ExecutionsColumns[2], ExecutionsColumns[1]},
			},
			{
				Name:    "execution_group_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[2], ExecutionsColumns[4]},
			},
			{
				Name:    "execution_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[4], ExecutionsColumns[7]},
			},
			{
				Name:    "execution_pod_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[16]},
				Annotation: &entsql.IndexAnnotation{
					Where: "pod_id IS NOT NULL",
				},
			},
		},
	}
	// ExecutionLogsColumns holds the columns for the "execution_logs" table.
	ExecutionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "group_email", Type: field.TypeString, Nullable: true},
	}
	// ExecutionLogsTable holds the schema information for the "execution_logs" table.
	ExecutionLogsTable = &schema.Table{
		Name:       "execution_logs",
		Columns:    ExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ExecutionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executionlog_execution_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[1], ExecutionLogsColumns[3]},
			},
			{
				Name:    "executionlog_group_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[4]},
			},
		},
	}
	// ExecutionTracesColumns holds the columns for the "execution_traces" table.
	ExecutionTracesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "job_id", Type: field.TypeString},
		{Name: "event_source", Type: field.TypeString},
		{Name: "event_context", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "trace_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "group_email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExecutionTracesTable holds the schema information for the "execution_traces" table.
	ExecutionTracesTable = &schema.Table{
		Name:       "execution_traces",
		Columns:    ExecutionTracesColumns,
		PrimaryKey: []*schema.Column{ExecutionTracesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executiontrace_job_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionTracesColumns[1]},
			},
			{
				Name:    "executiontrace_group_id_job_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionTracesColumns[7], ExecutionTracesColumns[1]},
			},
			{
				Name:    "executiontrace_event_type",
				Unique:  false,
				Columns: []*schema.Column{ExecutionTracesColumns[4]},
			},
			{
				Name:    "executiontrace_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionTracesColumns[9]},
			},
		},
	}
	// FlowRecordsColumns holds the columns for the "flow_records" table.
	FlowRecordsColumns = []*schema.Column{
		{Name: "flow_id", Type: field.TypeString, Unique: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "nodes", Type: field.TypeJSON, Nullable: true},
		{Name: "edges", Type: field.TypeJSON, Nullable: true},
		{Name: "starting_points", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FlowRecordsTable holds the schema information for the "flow_records" table.
	FlowRecordsTable = &schema.Table{
		Name:       "flow_records",
		Columns:    FlowRecordsColumns,
		PrimaryKey: []*schema.Column{FlowRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flowrecord_group_id_name",
				Unique:  false,
				Columns: []*schema.Column{FlowRecordsColumns[1], FlowRecordsColumns[2]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email_domain", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
	}
	// GroupMembershipsColumns holds the columns for the "group_memberships" table.
	GroupMembershipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "editor", "operator"}, Default: "operator"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// GroupMembershipsTable holds the schema information for the "group_memberships" table.
	GroupMembershipsTable = &schema.Table{
		Name:       "group_memberships",
		Columns:    GroupMembershipsColumns,
		PrimaryKey: []*schema.Column{GroupMembershipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_memberships_groups_memberships",
				Columns:    []*schema.Column{GroupMembershipsColumns[3]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "group_memberships_users_memberships",
				Columns:    []*schema.Column{GroupMembershipsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "groupmembership_user_id_group_id",
				Unique:  true,
				Columns: []*schema.Column{GroupMembershipsColumns[4], GroupMembershipsColumns[3]},
			},
		},
	}
	// MemoryConfigsColumns holds the columns for the "memory_configs" table.
	MemoryConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "backend_type", Type: field.TypeEnum, Enums: []string{"default", "databricks", "disabled"}, Default: "default"},
		{Name: "short_term_enabled", Type: field.TypeBool, Default: true},
		{Name: "long_term_enabled", Type: field.TypeBool, Default: true},
		{Name: "entity_enabled", Type: field.TypeBool, Default: true},
		{Name: "embedder", Type: field.TypeJSON, Nullable: true},
		{Name: "databricks", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MemoryConfigsTable holds the schema information for the "memory_configs" table.
	MemoryConfigsTable = &schema.Table{
		Name:       "memory_configs",
		Columns:    MemoryConfigsColumns,
		PrimaryKey: []*schema.Column{MemoryConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryconfig_group_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{MemoryConfigsColumns[1], MemoryConfigsColumns[8]},
			},
		},
	}
	// ToolRecordsColumns holds the columns for the "tool_records" table.
	ToolRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "group_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: "builtin"},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ToolRecordsTable holds the schema information for the "tool_records" table.
	ToolRecordsTable = &schema.Table{
		Name:       "tool_records",
		Columns:    ToolRecordsColumns,
		PrimaryKey: []*schema.Column{ToolRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolrecord_group_id_name",
				Unique:  true,
				Columns: []*schema.Column{ToolRecordsColumns[2], ToolRecordsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EngineSettingsTable,
		ExecutionsTable,
		ExecutionLogsTable,
		ExecutionTracesTable,
		FlowRecordsTable,
		GroupsTable,
		GroupMembershipsTable,
		MemoryConfigsTable,
		ToolRecordsTable,
		UsersTable,
	}
)

func init() {
	GroupMembershipsTable.ForeignKeys[0].RefTable = GroupsTable
	GroupMembershipsTable.ForeignKeys[1].RefTable = UsersTable
}
