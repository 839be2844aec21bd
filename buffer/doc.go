// Package buffer implements EditBuffer, an in-memory text buffer tuned for
// localized edits around a single moving cursor.
//
// The document is kept as three parts: committed characters before the
// cursor window, a pending window of uncommitted edits, and committed
// characters after it. Characters are extended grapheme clusters, and every
// index the API accepts or returns counts clusters.
//
// Out-of-range moves and deletes clamp at the document boundaries instead of
// failing. An EditBuffer is not safe for concurrent use.
package buffer
