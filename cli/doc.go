// Package cli contains the command line interface for clog.
//
// The CLI inspects and edits the level overrides a clog logger hierarchy
// persists, using the same stores and resolution rules as the library.
//
// # Usage
//
//	clog                       # effective level of the root logger
//	clog get api db            # effective levels of named loggers
//	clog set warn api          # persist an override for "api"
//	clog reset api             # remove it
//	clog list                  # every persisted override
//	clog emit info hello -n api
//
// # Configuration Loader
//
// Flags may be set in <config dir>/clog/config.yaml, a flat mapping from
// flag name to value, resolved by [resolve]. A JSON document at
// config.json is also read. The init command writes the current flag values
// to the YAML file.
//
// # Logging Options
//
//   - --log-level: Minimum level of the CLI's own diagnostics
//   - --log-style: Binding strategy of the diagnostics (auto, ansi, css, ...)
//
// # Store Options
//
//   - --store-kind: yaml (default), leveldb, both or mem
//   - --store-path: Location of the store; defaults to levels.yaml in the
//     config directory or levels.db in the cache directory
//   - --store-key: Base persistence key (default "loglevel")
package cli
