// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticlesColumns holds the columns for the "articles" table.
	ArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "filetype", Type: field.TypeString, Default: "md"},
		{Name: "generated_by", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"preview_ready", "content_generating", "content_ready", "content_failed"}, Default: "preview_ready"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "intent_id", Type: field.TypeInt},
	}
	// ArticlesTable holds the schema information for the "articles" table.
	ArticlesTable = &schema.Table{
		Name:       "articles",
		Columns:    ArticlesColumns,
		PrimaryKey: []*schema.Column{ArticlesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "articles_intents_articles",
				Columns:    []*schema.Column{ArticlesColumns[10]},
				RefColumns: []*schema.Column{IntentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "article_intent_id",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[10]},
			},
			{
				Name:    "article_status",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[7]},
			},
		},
	}
	// GenerationOrdersColumns holds the columns for the "generation_orders" table.
	GenerationOrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "query_id", Type: field.TypeInt, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"query_full", "intent_regen", "article_regen_keep_title", "mail_reply"}},
		{Name: "intent_id", Type: field.TypeInt, Nullable: true},
		{Name: "article_id", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "requested_by", Type: field.TypeEnum, Enums: []string{"user", "system"}, Default: "user"},
		{Name: "request_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "result_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GenerationOrdersTable holds the schema information for the "generation_orders" table.
	GenerationOrdersTable = &schema.Table{
		Name:       "generation_orders",
		Columns:    GenerationOrdersColumns,
		PrimaryKey: []*schema.Column{GenerationOrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationorder_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{GenerationOrdersColumns[5], GenerationOrdersColumns[10]},
			},
			{
				Name:    "generationorder_query_id_status",
				Unique:  false,
				Columns: []*schema.Column{GenerationOrdersColumns[1], GenerationOrdersColumns[5]},
			},
		},
	}
	// GenerationRunsColumns holds the columns for the "generation_runs" table.
	GenerationRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "order_id", Type: field.TypeInt, Nullable: true},
		{Name: "article_id", Type: field.TypeInt, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"preview", "content"}, Default: "content"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "llm_duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GenerationRunsTable holds the schema information for the "generation_runs" table.
	GenerationRunsTable = &schema.Table{
		Name:       "generation_runs",
		Columns:    GenerationRunsColumns,
		PrimaryKey: []*schema.Column{GenerationRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationrun_status_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{GenerationRunsColumns[4], GenerationRunsColumns[3], GenerationRunsColumns[9]},
			},
		},
	}
	// IntentsColumns holds the columns for the "intents" table.
	IntentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "intent_text", Type: field.TypeString, Size: 2147483647},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "filetype", Type: field.TypeString, Default: "md"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IntentsTable holds the schema information for the "intents" table.
	IntentsTable = &schema.Table{
		Name:       "intents",
		Columns:    IntentsColumns,
		PrimaryKey: []*schema.Column{IntentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "intent_intent_text_filetype",
				Unique:  true,
				Columns: []*schema.Column{IntentsColumns[1], IntentsColumns[4]},
			},
		},
	}
	// LlmFailuresColumns holds the columns for the "llm_failures" table.
	LlmFailuresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "component", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "error_name", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647},
		{Name: "request_snapshot", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmFailuresTable holds the schema information for the "llm_failures" table.
	LlmFailuresTable = &schema.Table{
		Name:       "llm_failures",
		Columns:    LlmFailuresColumns,
		PrimaryKey: []*schema.Column{LlmFailuresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmfailure_trigger_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmFailuresColumns[3], LlmFailuresColumns[10]},
			},
		},
	}
	// LeasesColumns holds the columns for the "leases" table.
	LeasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "scope_type", Type: field.TypeEnum, Enums: []string{"query", "intent", "article"}},
		{Name: "scope_key", Type: field.TypeString},
		{Name: "owner_order_id", Type: field.TypeInt},
		{Name: "lease_expires_at", Type: field.TypeTime},
	}
	// LeasesTable holds the schema information for the "leases" table.
	LeasesTable = &schema.Table{
		Name:       "leases",
		Columns:    LeasesColumns,
		PrimaryKey: []*schema.Column{LeasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lease_scope_type_scope_key",
				Unique:  true,
				Columns: []*schema.Column{LeasesColumns[1], LeasesColumns[2]},
			},
			{
				Name:    "lease_owner_order_id",
				Unique:  false,
				Columns: []*schema.Column{LeasesColumns[3]},
			},
			{
				Name:    "lease_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{LeasesColumns[4]},
			},
		},
	}
	// MailAttachmentsColumns holds the columns for the "mail_attachments" table.
	MailAttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"text", "image"}},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString, Nullable: true},
		{Name: "text_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "binary_content", Type: field.TypeBytes, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "reply_id", Type: field.TypeInt},
	}
	// MailAttachmentsTable holds the schema information for the "mail_attachments" table.
	MailAttachmentsTable = &schema.Table{
		Name:       "mail_attachments",
		Columns:    MailAttachmentsColumns,
		PrimaryKey: []*schema.Column{MailAttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mail_attachments_mail_replies_attachments",
				Columns:    []*schema.Column{MailAttachmentsColumns[7]},
				RefColumns: []*schema.Column{MailRepliesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mailattachment_reply_id",
				Unique:  false,
				Columns: []*schema.Column{MailAttachmentsColumns[7]},
			},
		},
	}
	// MailRepliesColumns holds the columns for the "mail_replies" table.
	MailRepliesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "streaming", "completed", "error"}, Default: "completed"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "unread", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeInt},
	}
	// MailRepliesTable holds the schema information for the "mail_replies" table.
	MailRepliesTable = &schema.Table{
		Name:       "mail_replies",
		Columns:    MailRepliesColumns,
		PrimaryKey: []*schema.Column{MailRepliesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mail_replies_mail_threads_replies",
				Columns:    []*schema.Column{MailRepliesColumns[6]},
				RefColumns: []*schema.Column{MailThreadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mailreply_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MailRepliesColumns[6], MailRepliesColumns[5]},
			},
			{
				Name:    "mailreply_thread_id_unread",
				Unique:  false,
				Columns: []*schema.Column{MailRepliesColumns[6], MailRepliesColumns[4]},
			},
		},
	}
	// MailThreadsColumns holds the columns for the "mail_threads" table.
	MailThreadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "user_set_title", Type: field.TypeBool, Default: false},
		{Name: "context_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary_token_count", Type: field.TypeInt, Default: 0},
		{Name: "last_summarized_reply_id", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MailThreadsTable holds the schema information for the "mail_threads" table.
	MailThreadsTable = &schema.Table{
		Name:       "mail_threads",
		Columns:    MailThreadsColumns,
		PrimaryKey: []*schema.Column{MailThreadsColumns[0]},
	}
	// OrderEventsColumns holds the columns for the "order_events" table.
	OrderEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "order_id", Type: field.TypeInt, Nullable: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrderEventsTable holds the schema information for the "order_events" table.
	OrderEventsTable = &schema.Table{
		Name:       "order_events",
		Columns:    OrderEventsColumns,
		PrimaryKey: []*schema.Column{OrderEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orderevent_channel_seq",
				Unique:  true,
				Columns: []*schema.Column{OrderEventsColumns[1], OrderEventsColumns[3]},
			},
			{
				Name:    "orderevent_order_id",
				Unique:  false,
				Columns: []*schema.Column{OrderEventsColumns[2]},
			},
		},
	}
	// OrderLogsColumns holds the columns for the "order_logs" table.
	OrderLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "order_id", Type: field.TypeInt},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"order", "spell", "intent", "article"}, Default: "order"},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"debug", "info", "warn", "error"}, Default: "info"},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrderLogsTable holds the schema information for the "order_logs" table.
	OrderLogsTable = &schema.Table{
		Name:       "order_logs",
		Columns:    OrderLogsColumns,
		PrimaryKey: []*schema.Column{OrderLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orderlog_order_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrderLogsColumns[1], OrderLogsColumns[6]},
			},
		},
	}
	// RuntimeSettingsColumns holds the columns for the "runtime_settings" table.
	RuntimeSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RuntimeSettingsTable holds the schema information for the "runtime_settings" table.
	RuntimeSettingsTable = &schema.Table{
		Name:       "runtime_settings",
		Columns:    RuntimeSettingsColumns,
		PrimaryKey: []*schema.Column{RuntimeSettingsColumns[0]},
	}
	// QueriesColumns holds the columns for the "queries" table.
	QueriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "original_value", Type: field.TypeString, Size: 2147483647},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "filetype", Type: field.TypeString, Default: "md"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QueriesTable holds the schema information for the "queries" table.
	QueriesTable = &schema.Table{
		Name:       "queries",
		Columns:    QueriesColumns,
		PrimaryKey: []*schema.Column{QueriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "searchquery_value_language",
				Unique:  true,
				Columns: []*schema.Column{QueriesColumns[1], QueriesColumns[3]},
			},
		},
	}
	// SpellEntriesColumns holds the columns for the "spell_entries" table.
	SpellEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text_hash", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "corrected", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SpellEntriesTable holds the schema information for the "spell_entries" table.
	SpellEntriesTable = &schema.Table{
		Name:       "spell_entries",
		Columns:    SpellEntriesColumns,
		PrimaryKey: []*schema.Column{SpellEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "spellentry_text_hash_language",
				Unique:  true,
				Columns: []*schema.Column{SpellEntriesColumns[1], SpellEntriesColumns[2]},
			},
		},
	}
	// QueryIntentsColumns holds the columns for the "query_intents" table.
	QueryIntentsColumns = []*schema.Column{
		{Name: "query_id", Type: field.TypeInt},
		{Name: "intent_id", Type: field.TypeInt},
	}
	// QueryIntentsTable holds the schema information for the "query_intents" table.
	QueryIntentsTable = &schema.Table{
		Name:       "query_intents",
		Columns:    QueryIntentsColumns,
		PrimaryKey: []*schema.Column{QueryIntentsColumns[0], QueryIntentsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "query_intents_query_id",
				Columns:    []*schema.Column{QueryIntentsColumns[0]},
				RefColumns: []*schema.Column{QueriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "query_intents_intent_id",
				Columns:    []*schema.Column{QueryIntentsColumns[1]},
				RefColumns: []*schema.Column{IntentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticlesTable,
		GenerationOrdersTable,
		GenerationRunsTable,
		IntentsTable,
		LlmFailuresTable,
		LeasesTable,
		MailAttachmentsTable,
		MailRepliesTable,
		MailThreadsTable,
		OrderEventsTable,
		OrderLogsTable,
		RuntimeSettingsTable,
		QueriesTable,
		SpellEntriesTable,
		QueryIntentsTable,
	}
)

func init() {
	ArticlesTable.ForeignKeys[0].RefTable = IntentsTable
	MailAttachmentsTable.ForeignKeys[0].RefTable = MailRepliesTable
	MailRepliesTable.ForeignKeys[0].RefTable = MailThreadsTable
	QueriesTable.Annotation = &entsql.Annotation{
		Table: "queries",
	}
	QueryIntentsTable.ForeignKeys[0].RefTable = QueriesTable
	QueryIntentsTable.ForeignKeys[1].RefTable = IntentsTable
}
