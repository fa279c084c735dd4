// Package docgen renders icon catalogues as Markdown tables and diffs
// catalogues against each other.
package docgen
