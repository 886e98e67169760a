package environ

import (
	"go.uber.org/zap"

	"github.com/sonnet007/AppManager/internal/users"
)

// Process-wide current-user context. Replacement is a single reference swap:
// a reader racing InitForCurrentUser sees either the old or the new resolver,
// never a torn one. Callers that switch users must serialize the switch
// against concurrent path lookups themselves.
var (
	currentUser  *UserEnvironment
	userRequired bool
)

func init() {
	InitForCurrentUser()
}

// InitForCurrentUser (re)builds the current-user resolver from the ambient
// user handle. Called once at startup and again whenever the ambient user
// changes, e.g. on a profile switch.
func InitForCurrentUser() {
	currentUser = NewUserEnvironment(UserHandle(users.Current()))
}

// SetUserRequired toggles strict mode. When enabled, user-agnostic path
// lookups are reported to the diagnostic log; results are unaffected.
func SetUserRequired(required bool) {
	userRequired = required
}

// reportIfUserRequired flags a user-agnostic lookup under strict mode.
// Advisory only; resolution proceeds with the current user either way.
func reportIfUserRequired() {
	if userRequired {
		diag.Error("path request must specify a user via UserEnvironment",
			zap.Stringer("current_user", currentUser.User()),
			zap.Stack("stack"))
	}
}

// ExternalStorageDirs returns the external volume roots of the current user.
func ExternalStorageDirs() []string {
	reportIfUserRequired()
	return currentUser.ExternalDirs()
}

// ExternalStorageAndroidDataDirs returns the android-specific data
// directories on the current user's external volumes.
func ExternalStorageAndroidDataDirs() []string {
	reportIfUserRequired()
	return currentUser.AndroidDataDirs()
}

// ExternalStorageAppDataDirs returns an application's data directories on
// the current user's external volumes.
func ExternalStorageAppDataDirs(packageName string) ([]string, error) {
	reportIfUserRequired()
	return currentUser.AppDataDirs(packageName)
}

// ExternalStorageAppMediaDirs returns an application's media directories on
// the current user's external volumes.
func ExternalStorageAppMediaDirs(packageName string) ([]string, error) {
	reportIfUserRequired()
	return currentUser.AppMediaDirs(packageName)
}

// ExternalStorageAppObbDirs returns an application's OBB directories on the
// current user's external volumes.
func ExternalStorageAppObbDirs(packageName string) ([]string, error) {
	reportIfUserRequired()
	return currentUser.AppObbDirs(packageName)
}

// ExternalStorageAppFilesDirs returns an application's files directories on
// the current user's external volumes.
func ExternalStorageAppFilesDirs(packageName string) ([]string, error) {
	reportIfUserRequired()
	return currentUser.AppFilesDirs(packageName)
}

// ExternalStorageAppCacheDirs returns an application's cache directories on
// the current user's external volumes.
func ExternalStorageAppCacheDirs(packageName string) ([]string, error) {
	reportIfUserRequired()
	return currentUser.AppCacheDirs(packageName)
}

// ExternalStoragePublicDirs returns the public directories of the given type
// on the current user's external volumes.
func ExternalStoragePublicDirs(dirType string) ([]string, error) {
	reportIfUserRequired()
	return currentUser.PublicDirs(dirType)
}
