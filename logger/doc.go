// Package logger is the public API of forestry. Most users only need
// to import this package.
//
// Six methods log a message, one per level: Info, Warning, Error,
// Success, Critical and Debug. Each call writes a header and the
// message into a fixed-size staging buffer:
//
//	[002a:*](12.034ms) message
//
// The index is a 16-bit counter that advances once per call; when it
// wraps, one extra warning says so. The symbol and color come from the
// level, and the elapsed time appears once the Timer option is set.
//
// Options only ever add to the configuration:
//
//	log := logger.NewBuilder().
//	    WithOptions(logger.Plain, logger.Timer).
//	    Build()
//	defer log.Close()
//	log.SetOption(logger.LogFile) // also write to "<hex>.log"
//
// The package initializes a default Logger writing to stderr, and the
// package-level functions (Info, SetOption, Deinit, ...) delegate to
// it, so a small program can log with no setup at all. Deinit must
// be called at shutdown to flush the last output and close the file.
//
// A Logger is single-goroutine by design and takes no locks. Use the
// adapters in package handler for concurrent callers.
package logger
