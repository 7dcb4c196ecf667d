// Package store holds the in-memory snapshot of the family's shared data.
//
// The store is the single source the HTTP layer reads from. Writers come
// from two directions: optimistic updates applied by the services the
// moment a request is accepted, and wholesale collection replacements
// applied by the realtime syncer when the database view changes. Both
// paths converge on the same copy-on-read structure, so readers always
// see a consistent snapshot without holding locks across handler work.
package store
