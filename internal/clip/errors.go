//go:build unix

package clip

import "errors"

var (
	ErrOwnershipClaim = errors.New("claim selection ownership")
	ErrDisconnected   = errors.New("session disconnected")
	// ErrHandoff marks a transfer whose descriptor never reached the peer.
	ErrHandoff = errors.New("descriptor handoff failed")
)
