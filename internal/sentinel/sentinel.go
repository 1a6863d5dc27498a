// Package sentinel holds the errors stores return. The party service
// translates them into domain errors once, at the service boundary.
package sentinel

import "errors"

// ErrAlreadyUsed means the party id is already present in the store.
var ErrAlreadyUsed = errors.New("party id already in use")
