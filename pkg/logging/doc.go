// Package logging configures the log/slog loggers used by wsdlgen.
//
// Generation warnings are part of the generated document; the logger only
// carries diagnostics about how a document was produced (schemas collected,
// prefixes allocated, truncated root element lists).
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//
// Components take a *slog.Logger and fall back to Nop when none is given.
package logging
