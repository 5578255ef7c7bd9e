// Package sessionid generates run identifiers for cmd/riblt-sync, grounded
// on SnellerInc-sneller's use of google/uuid to tag individual requests.
package sessionid

import "github.com/google/uuid"

// New returns a fresh random UUID string used to tag one side's log lines
// for a run. Each side generates its own; the two are not exchanged.
func New() string {
	return uuid.NewString()
}
