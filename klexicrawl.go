// Package klexicrawl crawls the Klexikon and MiniKlexikon encyclopedias,
// extracts article text, and exports the result as a JSON dataset of
// paragraphs and sentences.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package klexicrawl
