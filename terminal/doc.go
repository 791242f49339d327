// Package terminal owns the terminal session for the game on top of tcell.
//
// Features:
//   - Raw input, hidden cursor, alternate screen via tcell
//   - Non-blocking key polling with a single pushback slot
//   - Resize-aware presentation (full Sync after a resize)
//   - Idempotent Fini that is safe from crash handlers
package terminal
