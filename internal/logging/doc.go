// Package logging builds the named loggers whose level can be inspected and
// changed while the server runs, and the observer that reports book
// operations on the books logger.
//
// Levels are the names ERROR, WARN, INFO, DEBUG and TRACE. TRACE has no zap
// counterpart and is mapped to TraceLevel, one step below debug.
package logging
