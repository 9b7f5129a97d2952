// Package websummary provides a single-page web summarizer: it fetches a
// public web page, extracts the main textual content, and asks a hosted
// chat-completion API to produce a summary of adjustable length.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., readability/, groq/, gin/).
package websummary
