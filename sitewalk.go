// Package sitewalk provides a same-domain web crawler that enumerates the
// reachable paths on a host. Starting from a seed URL it walks links
// breadth-first up to a bounded depth, visiting each distinct URL at most
// once, and reports every discovered path with its HTTP status code.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/) and the crawl
// engine lives in crawl/.
package sitewalk
