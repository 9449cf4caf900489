// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "paths-only" -> FlagPathsOnly).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagAll         = "all"          // Include synthetic owners in listings
	FlagCount       = "count"        // Output count only
	FlagForce       = "force"        // Overwrite existing files
	FlagGlobs       = "globs"        // Render patterns as search-tool globs
	FlagIgnoreCase  = "ignore-case"  // Case-insensitive matching
	FlagInvertMatch = "invert-match" // Invert match selection
	FlagJoin        = "join"         // Comma-join rendered globs
	FlagLocal       = "local"        // Use local scope (workspace config)
	FlagLong        = "long"         // Long format output
	FlagPathsOnly   = "paths-only"   // Output paths only
	FlagTree        = "tree"         // Tree view output
	FlagUnowned     = "unowned"      // Restrict to unowned files
	FlagWatch       = "watch"        // Reload rule file on change

	// String flags

	FlagLocation = "location" // Rule file location for init
	FlagOwner    = "owner"    // Owner filter

	// Integer flags

	FlagContext = "context" // Context lines around matches
)
