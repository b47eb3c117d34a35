package osmosis

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace of the errors returned by the mock querier.
const Codespace = "osmosismock"

var (
	// ErrUnhandledRoute is returned for any path outside the supported routes.
	ErrUnhandledRoute = errorsmod.Register(Codespace, 2, "unhandled route")
	// ErrDecodeFailure is returned when a payload does not match its route.
	ErrDecodeFailure = errorsmod.Register(Codespace, 3, "failed to decode request")
	// ErrNotFound is carried by an Envelope when no fixture matches the request.
	ErrNotFound = errorsmod.Register(Codespace, 4, "fixture not found")
)
