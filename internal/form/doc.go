// Package form holds the state behind the sign-up and profile forms.
//
// A Record is a plain value. Every operation takes a Record and returns the
// updated copy; nothing in this package mutates shared state. Field updates
// sanitize their input, getters derive the display name and username when no
// override is stored, and the validity predicates gate submission.
//
// Nothing here fails: sanitizers and derivations accept any string, and the
// predicates answer false for missing or malformed fields.
package form
