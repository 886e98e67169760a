package environ

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Environment variables for external-storage discovery.
const (
	envExternalStorage       = "EXTERNAL_STORAGE"
	envEmulatedStorageTarget = "EMULATED_STORAGE_TARGET"
)

// defaultExternalStorage is used when EXTERNAL_STORAGE is undefined on a
// device with physical external storage.
const defaultExternalStorage = "/storage/sdcard0"

// Well-known directory names on external storage.
const (
	dirAndroid = "Android"
	dirData    = "data"
	dirMedia   = "media"
	dirObb     = "obb"
	dirFiles   = "files"
	dirCache   = "cache"
)

// UserHandle identifies an OS user. Handles are opaque non-negative integers
// supplied by the platform; this package never fabricates them.
type UserHandle int

// String returns the decimal form burned into per-user storage paths.
func (u UserHandle) String() string {
	return strconv.Itoa(int(u))
}

// UserEnvironment resolves external-storage paths for a single user. The
// volume-enumeration capability is captured at construction; volume lists
// themselves are computed fresh on every call, never cached.
type UserEnvironment struct {
	user    UserHandle
	volumes VolumeManager // nil when the host lacks the capability
}

// NewUserEnvironment returns a resolver for the given user, bound to the
// currently registered volume-enumeration capability.
func NewUserEnvironment(user UserHandle) *UserEnvironment {
	return &UserEnvironment{user: user, volumes: activeVolumeManager()}
}

// User returns the handle this resolver was built for.
func (ue *UserEnvironment) User() UserHandle {
	return ue.user
}

// ExternalDirs returns the external-storage volume roots reachable by this
// user, primary volume first. The result is never empty.
//
// Volumes are discovered by querying the host's volume-enumeration
// capability when one is registered; on any failure, or when no returned
// volume carries a usable path, discovery falls back to the storage
// environment variables. The two results are never merged.
func (ue *UserEnvironment) ExternalDirs() []string {
	if vm := ue.volumes; vm != nil {
		if dirs, ok := ue.queryVolumes(vm); ok {
			return dirs
		}
	}

	if target := os.Getenv(envEmulatedStorageTarget); target != "" {
		// Device has emulated storage; external storage paths have the
		// user id burned into them: /storage/emulated/0.
		return []string{BuildPath(target, ue.user.String())}
	}

	// Device has physical external storage; use the plain path.
	external := os.Getenv(envExternalStorage)
	if external == "" {
		diag.Warn("EXTERNAL_STORAGE undefined; falling back to default",
			zap.String("default", defaultExternalStorage))
		external = defaultExternalStorage
	}
	return []string{absolute(external)}
}

// queryVolumes runs the capability strategy. ok reports whether its result
// may be used; a false return means fall back to the environment.
func (ue *UserEnvironment) queryVolumes(vm VolumeManager) (dirs []string, ok bool) {
	volumes, err := vm.Volumes(ue.user, true)
	if err != nil {
		diag.Warn("volume enumeration failed; falling back to environment",
			zap.Stringer("user", ue.user), zap.Error(err))
		return nil, false
	}
	for _, volume := range volumes {
		if volume.Path == "" {
			// Volume reports no usable path; skip, not an error.
			continue
		}
		dirs = append(dirs, absolute(volume.Path))
	}
	return dirs, len(dirs) > 0
}

// AndroidDataDirs returns the android-specific data directory on each
// external volume.
func (ue *UserEnvironment) AndroidDataDirs() []string {
	return BuildPaths(ue.ExternalDirs(), dirAndroid, dirData)
}

// AndroidObbDirs returns the android-specific OBB directory on each
// external volume.
func (ue *UserEnvironment) AndroidObbDirs() []string {
	return BuildPaths(ue.ExternalDirs(), dirAndroid, dirObb)
}

// AppDataDirs returns the raw path to an application's data on each
// external volume.
func (ue *UserEnvironment) AppDataDirs(packageName string) ([]string, error) {
	if err := validateSegment(packageName); err != nil {
		return nil, err
	}
	return BuildPaths(ue.ExternalDirs(), dirAndroid, dirData, packageName), nil
}

// AppMediaDirs returns the raw path to an application's media on each
// external volume.
func (ue *UserEnvironment) AppMediaDirs(packageName string) ([]string, error) {
	if err := validateSegment(packageName); err != nil {
		return nil, err
	}
	return BuildPaths(ue.ExternalDirs(), dirAndroid, dirMedia, packageName), nil
}

// AppObbDirs returns the raw path to an application's OBB files on each
// external volume.
func (ue *UserEnvironment) AppObbDirs(packageName string) ([]string, error) {
	if err := validateSegment(packageName); err != nil {
		return nil, err
	}
	return BuildPaths(ue.ExternalDirs(), dirAndroid, dirObb, packageName), nil
}

// AppFilesDirs returns the path to an application's files on each external
// volume.
func (ue *UserEnvironment) AppFilesDirs(packageName string) ([]string, error) {
	if err := validateSegment(packageName); err != nil {
		return nil, err
	}
	return BuildPaths(ue.ExternalDirs(), dirAndroid, dirData, packageName, dirFiles), nil
}

// AppCacheDirs returns the path to an application's cache on each external
// volume.
func (ue *UserEnvironment) AppCacheDirs(packageName string) ([]string, error) {
	if err := validateSegment(packageName); err != nil {
		return nil, err
	}
	return BuildPaths(ue.ExternalDirs(), dirAndroid, dirData, packageName, dirCache), nil
}

// PublicDirs returns the well-known public directory of the given type on
// each external volume.
func (ue *UserEnvironment) PublicDirs(dirType string) ([]string, error) {
	if err := validateSegment(dirType); err != nil {
		return nil, err
	}
	return BuildPaths(ue.ExternalDirs(), dirType), nil
}

// ExternalStorageDirectory returns the primary external volume.
//
// Deprecated: storage can span multiple volumes; use ExternalDirs.
func (ue *UserEnvironment) ExternalStorageDirectory() string {
	return ue.ExternalDirs()[0]
}

// ExternalStoragePublicDirectory returns the public directory of the given
// type on the primary external volume.
//
// Deprecated: storage can span multiple volumes; use PublicDirs.
func (ue *UserEnvironment) ExternalStoragePublicDirectory(dirType string) (string, error) {
	dirs, err := ue.PublicDirs(dirType)
	if err != nil {
		return "", err
	}
	return dirs[0], nil
}
