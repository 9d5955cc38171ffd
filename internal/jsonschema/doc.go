// Package jsonschema generates JSON Schema documents from Go types by
// reflection. The schemas are fed to LLM structured-output APIs to constrain
// model responses to a declared shape.
package jsonschema
