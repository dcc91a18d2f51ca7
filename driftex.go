// Package driftex extracts structured records from semi-structured documents
// whose markup changes unpredictably over time. Given a logical section of a
// document it locates candidate item nodes, pulls ordered text and links from
// each using competing heuristics, converts the result into typed records,
// scores confidence, and degrades gracefully when the document's structure
// has drifted.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/) or, for
// pure-domain logic, after their function (e.g., extract/, parse/,
// pipeline/).
package driftex
