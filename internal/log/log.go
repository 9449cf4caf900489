// Package log provides centralised audit logging for codeowner operations.
// Logs are stored in ~/.codeowner/log/codeowner-log.db and track all CLI
// commands and MCP tool invocations across workspaces.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("owners:resolve", "resolve").
//		Path(p).
//		Pattern(info.MatchingPattern).
//		Write(err)
//
//	log.Event("search:files", "list").
//		Owner(owner).
//		Detail("count", len(files)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "owners:resolve",
// "rules:check", "mcp:codeowner_search".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "owners:resolve", "mcp:codeowner_search"
	Action string // verb: resolve, list, check, search, etc.
	Path   string // input: file path queried
	Owner  string // input: owner queried

	// Pattern is the rule pattern that determined the outcome, when one did.
	Pattern string

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "owners:resolve", "rules:check")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:codeowner_resolve")
//
// The action describes what operation was performed:
//   - "resolve", "list", "check", "search", "diff", "init", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the file path this operation queried.
//
// Use for operations that target a specific path. Leave unset for
// operations that don't (e.g., config, owner listings).
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Owner sets the owner this operation queried.
func (b *Builder) Owner(owner string) *Builder {
	b.entry.Owner = owner
	return b
}

// Pattern sets the rule pattern that determined the outcome.
//
// For resolve: the last matching pattern. Leave unset when no rule matched.
func (b *Builder) Pattern(pattern string) *Builder {
	b.entry.Pattern = pattern
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// search queries, result counts, rendered globs, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// Example:
//
//	info, err := eng.Resolve(path)
//	log.Event("owners:resolve", "resolve").Path(path).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetWorkspace sets the workspace identifier for subsequent log entries.
// The root should be the absolute path to the workspace root.
func SetWorkspace(root string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.workspace = hash(root)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
