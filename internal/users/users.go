// Package users resolves the OS user the process is currently acting for.
//
// User handles are opaque non-negative integers assigned by the platform.
// The ambient handle comes from configuration (AM_USER_HANDLE, set by the
// privileged launcher); embedders with a richer notion of "current user"
// can install their own Provider.
package users

import (
	"github.com/sonnet007/AppManager/internal/config"
)

// OwnerHandle is the handle of the device owner, the first user created.
const OwnerHandle = 0

// Provider returns the handle of the active user.
type Provider func() int

var provider Provider = ambient

// ambient reads the handle the process was launched for.
func ambient() int {
	handle := config.LoadOrDefault().User.Handle
	if handle < 0 {
		return OwnerHandle
	}
	return handle
}

// Current returns the active user handle.
func Current() int {
	return provider()
}

// SetProvider installs p as the source of the active user handle.
// A nil p restores the ambient provider.
func SetProvider(p Provider) {
	if p == nil {
		provider = ambient
		return
	}
	provider = p
}
