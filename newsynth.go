// Package newsynth provides a local, CLI-based research assistant.
// It searches the web for recent articles about a topic, extracts their
// readable text, and summarizes them with a locally hosted language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, ollama/, duckduckgo/).
package newsynth
