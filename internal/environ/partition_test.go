package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDirectoryOverride(t *testing.T) {
	t.Setenv("TEST_PARTITION_ROOT", "/custom/system")
	assert.Equal(t, "/custom/system", resolveDirectory("TEST_PARTITION_ROOT", "/system"))
}

func TestResolveDirectoryUnset(t *testing.T) {
	assert.Equal(t, "/system", resolveDirectory("TEST_PARTITION_ROOT_UNSET", "/system"))
}

func TestResolveDirectoryEmptyCountsAsUnset(t *testing.T) {
	t.Setenv("TEST_PARTITION_ROOT", "")
	assert.Equal(t, "/vendor", resolveDirectory("TEST_PARTITION_ROOT", "/vendor"))
}

// Partition roots are resolved exactly once at startup; later environment
// changes must not leak into the accessors.
func TestPartitionRootsAreFixedAfterInit(t *testing.T) {
	before := RootDirectory()
	t.Setenv(envAndroidRoot, "/somewhere/else")
	assert.Equal(t, before, RootDirectory())

	beforeVendor := VendorDirectory()
	t.Setenv(envVendorRoot, "/somewhere/else")
	assert.Equal(t, beforeVendor, VendorDirectory())
}

func TestPartitionRootsTable(t *testing.T) {
	roots := PartitionRoots()
	require.Len(t, roots, 11)

	byName := make(map[string]PartitionRoot, len(roots))
	for _, root := range roots {
		byName[root.Name] = root
	}

	assert.Equal(t, RootDirectory(), byName["system"].Path)
	assert.Equal(t, DataDirectory(), byName["data"].Path)
	assert.Equal(t, VendorDirectory(), byName["vendor"].Path)
	assert.Equal(t, DownloadCacheDirectory(), byName["download-cache"].Path)
	assert.Equal(t, "/mnt/expand", byName["expand"].Default)
	assert.Equal(t, "APEX_ROOT", byName["apex"].Variable)
}

func TestDataDerivedDirectories(t *testing.T) {
	data := DataDirectory()
	assert.Equal(t, BuildPath(data, "system"), DataSystemDirectory())
	assert.Equal(t, BuildPath(data, "app"), DataAppDirectory())
	assert.Equal(t, BuildPath(data, "data"), DataDataDirectory())
}
