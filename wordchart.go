// Package wordchart fetches a web article, reduces it to lowercase word
// tokens, counts how often each word occurs and charts the most frequent
// words as an interactive bar or pie chart.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gochart/, fyne/).
package wordchart
