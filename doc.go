// Package firemarks reads bookmarks from a local Firefox profile and renders
// them as org-mode links.
//
// This is intended for local tooling (shell pipelines, editor integration). It
// reads browser state from the user's profile directory; the live database is
// never opened directly, queries run against a private read-only snapshot.
package firemarks
