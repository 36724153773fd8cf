// Package gemini implements newsynth.ChatClient and newsynth.ModelChecker
// using the Google Gen AI SDK.
package gemini
