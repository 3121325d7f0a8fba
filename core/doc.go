// Package core defines the shared types used across forestry.
//
// Level enumerates the six message kinds (info, warning, error,
// success, critical, debug) and carries each kind's header symbol and
// emphasis. Option and Flags form the configuration model: options are
// applied one at a time and OR bits into a Flags value, and only the
// Reset option clears them. Every formatting step reads Flags but none
// writes it.
//
// Stopwatch backs the optional elapsed-time stamp. It starts itself on
// first use when no start time was set, and reads time through an
// injectable Clock.
package core
