// Package ai defines the provider-agnostic chat types and the Provider
// interface. Concrete implementations (see the gemini subpackage) translate
// these generic requests and responses to their wire formats, so the rest of
// the module never depends on a specific vendor API.
package ai
