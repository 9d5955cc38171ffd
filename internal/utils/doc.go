// Package utils contains small internal helpers shared by providers and the
// analyzer: a JSON-over-HTTP POST helper, string truncation for log output,
// and generic string-to-type parsing with best-effort JSON repair.
package utils
