package sentinel

import "errors"

// ErrUnavailable is an infrastructure fact: the backend is temporarily
// unavailable (breaker open, not configured). Stores and caches return it
// (optionally wrapped) so services can translate it into a domain error.
var ErrUnavailable = errors.New("unavailable")
