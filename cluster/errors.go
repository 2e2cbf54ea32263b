package cluster

import (
	"github.com/grailbio/base/errors"
)

// ErrInputFormat wraps a malformed or unparsable input row. Used by
// encoding/geopoints to report the originating file and line number
// alongside the underlying parse error.
func ErrInputFormat(ctx ...interface{}) error {
	return errors.E(append([]interface{}{"input format"}, ctx...)...)
}

// errInvariant wraps a violated structural invariant (a dead-region
// reference, a nil member list, a negative best-potential slot). These
// are never recoverable: they imply the live-set bookkeeping has
// silently lost data.
func errInvariant(ctx ...interface{}) error {
	return errors.E(append([]interface{}{"invariant violation"}, ctx...)...)
}

// errNumeric wraps a NaN or negative potential, which signals a
// coordinate or weight bug rather than a data quality issue.
func errNumeric(ctx ...interface{}) error {
	return errors.E(append([]interface{}{"numeric error"}, ctx...)...)
}
