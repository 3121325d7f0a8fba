// Package buffer provides the fixed-capacity staging buffer that every
// formatted fragment passes through on its way to the sinks.
//
// A Buffer never grows. When a fragment does not fit in the remaining
// space, the buffered bytes are handed to the Flusher, the cursor is
// reset and the fragment is tried again. A fragment that is larger
// than the whole buffer cannot be placed even after a flush; it is
// dropped and a fixed diagnostic is written to the diagnostic writer.
// Nothing is ever partially written and nothing panics, because a
// logging buffer must not take the host program down.
//
// Single bytes follow a different rule: a byte always fits once the
// buffer is flushed, so AppendByte flushes and retries instead of
// dropping.
//
// A Buffer is not safe for concurrent use.
package buffer
