// Package audit provides the append-only audit trail of the warehouse domain.
//
// Every registration and status change produces an immutable Entry recording
// the action, the statuses and location codes before and after, and when the
// change happened. Entries are never updated or deleted.
package audit
