// Package sink delivers flushed buffer contents to stderr and to an
// optional log file.
//
// A Dispatcher is driven by the logger's flags on every flush: output
// goes to stderr unless the OnlyFile option is set, and to the file
// sink when LogFile is set. If file output is requested but no file
// was installed, the Dispatcher creates one named after a monotonic
// microsecond timestamp in hex (for example "1b2f4c6d8e.log") and
// keeps it for the rest of its life. Files created this way are held
// under an advisory flock(2) lock while each write happens.
//
// Write failures never reach the logging call. They are counted in
// Stats, combined into a single error and reported by Err and Close.
package sink
