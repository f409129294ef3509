// Package log provides a leveled logging façade over a console-like sink.
//
// Loggers form a flat hierarchy: one unnamed root and any number of named
// children, each parented directly to the root.
//
// # Basic Usage
//
//	root := log.New()
//	api, err := root.GetLogger("api")
//	if err != nil {
//		return err
//	}
//	api.Info("listening on", addr)
//
// # Levels
//
// Every output method checks its severity against [Logger.Level] when
// called. A logger's effective level is the first of its explicit level
// ([Logger.SetLevel]), the level persisted for it in the store, its default
// level ([Logger.SetDefaultLevel]), the root's level and the scheme
// fallback.
//
// Explicit levels are persisted under the logger's store key, "loglevel"
// for the root and "loglevel:name" for a child, so an override survives
// restarts when the store is durable.
//
// # Configuration
//
// Configure the root using functional options:
//
//	root := log.New(
//		log.WithStore(levels),
//		log.WithSink(sink.Std),
//		log.WithBinder(style.Auto()),
//		log.WithScheme(level.Five))
//
// Children inherit the configuration of the logger that created them.
// [Logger.Use] and [Logger.SetConfig] replace the sink and binding strategy
// of one logger only.
//
// # Sink Capabilities
//
// Capabilities of the sink beyond the severities are reached through
// [Logger.Call] and its wrappers ([Logger.Table], [Logger.Group], ...).
// They are never filtered by level.
package log
