// Package gemini implements ai.Provider against Google's Gemini REST API
// (generateContent endpoint). It supports text and inline/URI image content
// parts, structured output via responseSchema, and surfaces token usage and
// safety-block feedback on the generic response.
package gemini
