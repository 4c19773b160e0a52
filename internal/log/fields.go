package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldDate        = "date"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldDescription = "description"
	FieldCount       = "count"
	FieldBackend     = "backend"
	FieldPath        = "path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentConsole = "console"
	ComponentStorage = "storage"
	ComponentSeed    = "seed"
)

// Operations defines standard operation names
const (
	OpAppend   = "append"
	OpFilter   = "filter"
	OpSummary  = "summary"
	OpRestore  = "restore"
	OpArchive  = "archive"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
