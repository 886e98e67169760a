package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sonnet007/AppManager/internal/logging"
	"github.com/sonnet007/AppManager/internal/users"
)

// switchUser routes the ambient user to handle for the duration of the test.
func switchUser(t *testing.T, handle int) {
	t.Helper()
	users.SetProvider(func() int { return handle })
	InitForCurrentUser()
	t.Cleanup(func() {
		users.SetProvider(nil)
		InitForCurrentUser()
	})
}

func TestInitForCurrentUser(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv(envEmulatedStorageTarget, "/storage/emulated")
	switchUser(t, 10)

	assert.Equal(t, []string{"/storage/emulated/10"}, ExternalStorageDirs())
}

func TestInitForCurrentUserIsIdempotent(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv(envEmulatedStorageTarget, "/storage/emulated")
	switchUser(t, 10)

	before := ExternalStorageDirs()
	beforeData, err := ExternalStorageAppDataDirs("com.example")
	require.NoError(t, err)

	InitForCurrentUser()

	assert.Equal(t, before, ExternalStorageDirs())
	afterData, err := ExternalStorageAppDataDirs("com.example")
	require.NoError(t, err)
	assert.Equal(t, beforeData, afterData)
}

func TestCurrentUserAccessors(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv(envEmulatedStorageTarget, "/storage/emulated")
	switchUser(t, 0)

	assert.Equal(t, []string{"/storage/emulated/0/Android/data"}, ExternalStorageAndroidDataDirs())

	dirs, err := ExternalStorageAppMediaDirs("com.example")
	require.NoError(t, err)
	assert.Equal(t, []string{"/storage/emulated/0/Android/media/com.example"}, dirs)

	dirs, err = ExternalStorageAppObbDirs("com.example")
	require.NoError(t, err)
	assert.Equal(t, []string{"/storage/emulated/0/Android/obb/com.example"}, dirs)

	dirs, err = ExternalStorageAppFilesDirs("com.example")
	require.NoError(t, err)
	assert.Equal(t, []string{"/storage/emulated/0/Android/data/com.example/files"}, dirs)

	dirs, err = ExternalStorageAppCacheDirs("com.example")
	require.NoError(t, err)
	assert.Equal(t, []string{"/storage/emulated/0/Android/data/com.example/cache"}, dirs)

	dirs, err = ExternalStoragePublicDirs("Download")
	require.NoError(t, err)
	assert.Equal(t, []string{"/storage/emulated/0/Download"}, dirs)
}

func TestStrictModeEmitsDiagnosticOnly(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv(envEmulatedStorageTarget, "/storage/emulated")
	switchUser(t, 0)

	relaxed, err := ExternalStorageAppDataDirs("com.example")
	require.NoError(t, err)

	core, logs := observer.New(zapcore.ErrorLevel)
	SetDiagnostics(&logging.Logger{Logger: zap.New(core)})
	defer SetDiagnostics(nil)

	SetUserRequired(true)
	defer SetUserRequired(false)

	strict, err := ExternalStorageAppDataDirs("com.example")
	require.NoError(t, err)

	// Strict mode never changes the result, only reports the call site.
	assert.Equal(t, relaxed, strict)

	entries := logs.FilterMessageSnippet("must specify a user").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestStrictModeDisabledEmitsNothing(t *testing.T) {
	clearStorageEnv(t)
	switchUser(t, 0)

	core, logs := observer.New(zapcore.ErrorLevel)
	SetDiagnostics(&logging.Logger{Logger: zap.New(core)})
	defer SetDiagnostics(nil)

	ExternalStorageDirs()

	assert.Zero(t, logs.FilterMessageSnippet("must specify a user").Len())
}
