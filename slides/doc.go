// Package slides reconstructs the structure of slide images using a
// multimodal LLM: the background color plus every text block and image
// region with its position, size and basic styling.
//
// The package has two layers. Sanitize and Parse form a pure text pipeline
// that repairs common syntax damage in model output (markdown fences,
// surrounding prose, broken unicode escapes, stray control characters) and
// unmarshals it, with one jsonrepair pass as a fallback. Analyzer wires that
// pipeline to an ai.Provider for end-to-end image analysis.
package slides
