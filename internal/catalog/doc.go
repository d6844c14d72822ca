// Package catalog holds the immutable set of videos known to a session.
//
// A catalog is built once at startup from either a delimited text file
// (one "title|id|tag1,tag2" record per line) or a SQLite database with a
// videos(title, id, tags) table. Fields are trimmed, empty lines are
// skipped and the tags field may be empty.
//
// Loading is all-or-nothing: any malformed record, empty id or title, or
// repeated id aborts the load with a [*LoadError] that names the offending
// line (or row). Duplicate ids are rejected rather than overwritten so that
// a catalog never silently loses a video.
package catalog
