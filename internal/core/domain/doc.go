// Package domain contains the core business types for docchat.
// It has no dependencies on adapters or infrastructure; everything here is
// plain data plus the invariants the chat session and extraction pipeline
// rely on.
package domain
