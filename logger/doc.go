// Package logger is the public API of coloredlogs. Most users only
// need to import this package.
//
// The quickest start is Install, which replaces the default logger
// with a console logger that colors its output when stderr is a
// terminal:
//
//	logger.Install(logger.InstallConfig{Level: "debug"})
//	logger.Info("ready", logger.Int("port", 8080))
//
// End users can then adjust level, template and colors through the
// COLOREDLOGS_* environment variables without code changes.
//
// A Logger is immutable after construction. All fields, the level,
// the name and the handler are set once via the Builder and never
// modified, which makes Logger safe for concurrent use without any
// locking on the read path.
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithName("worker").
//	    Build()
//
// Child loggers are created via With (extra fields) and Named
// (hierarchical dotted names):
//
//	reqLog := log.Named("http").With(logger.String("request_id", id))
//
// Level checks happen before any allocation, so filtered-out messages
// cost only a single integer comparison.
package logger
