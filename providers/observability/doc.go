// Package observability defines the logging and tracing abstraction used by
// providers and the analyzer. Implementations live in subpackages (slogobs
// for log/slog). Observers and spans travel on the context so that deeply
// nested code (HTTP helpers, providers) can emit events without threading a
// logger through every call.
package observability
