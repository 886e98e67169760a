package environ

import "errors"

// ErrVolumesUnsupported is returned by VolumeManager implementations on
// hosts whose OS generation cannot enumerate storage volumes.
var ErrVolumesUnsupported = errors.New("volume enumeration not supported")

// Volume describes one external-storage mount reported by a VolumeManager.
type Volume struct {
	ID string
	// Path is the filesystem path of the mount. Some volumes report no
	// usable path; those are skipped during resolution.
	Path string
}

// VolumeManager enumerates the external-storage volumes the host exposes.
// It models the platform's volume-query capability; implementations are
// expected to perform a single bounded call with no retries.
type VolumeManager interface {
	// Volumes returns the storage volumes reachable by user. When
	// writableOnly is set, only write-capable volumes are returned.
	// Any error (unsupported, permission, invocation failure) makes the
	// resolver fall back to environment-based discovery.
	Volumes(user UserHandle, writableOnly bool) ([]Volume, error)
}

var volumeManager VolumeManager

// SetVolumeManager registers the host's volume-enumeration capability.
// Passing nil declares the capability absent, which forces environment-based
// discovery. Resolvers capture the registered manager at construction time.
func SetVolumeManager(vm VolumeManager) {
	volumeManager = vm
}

// activeVolumeManager is the construction-time capability probe.
func activeVolumeManager() VolumeManager {
	return volumeManager
}
