// Package style maps log levels and record fields to terminal styles.
//
// A Style selects a foreground color, background color, and the bold,
// faint and underline attributes. The zero Style renders nothing,
// which is the fallback for levels without an entry; formatting an
// unknown level therefore produces plain text rather than an error.
//
// Styles can be overridden at runtime through a compact text syntax
// ("error=red,bold;warning=yellow") or a JSON object, typically
// supplied via the COLOREDLOGS_LEVEL_STYLES and
// COLOREDLOGS_FIELD_STYLES environment variables. Malformed fragments
// are skipped so a bad spec can never break logging.
package style
