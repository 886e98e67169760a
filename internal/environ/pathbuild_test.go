package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPath(t *testing.T) {
	got := BuildPath("/storage/emulated/0", "Android", "data", "com.example", "cache")
	assert.Equal(t, "/storage/emulated/0/Android/data/com.example/cache", got)
}

func TestBuildPathNoSegments(t *testing.T) {
	assert.Equal(t, "/storage/sdcard0", BuildPath("/storage/sdcard0"))
}

func TestBuildPathKeepsRepeatedSegments(t *testing.T) {
	assert.Equal(t, "/data/data/data", BuildPath("/data", "data", "data"))
}

func TestBuildPaths(t *testing.T) {
	bases := []string{"/a", "/b"}
	got := BuildPaths(bases, "Android", "data", "com.example", "files")

	require.Len(t, got, len(bases))
	assert.Equal(t, "/a/Android/data/com.example/files", got[0])
	assert.Equal(t, "/b/Android/data/com.example/files", got[1])
}

func TestBuildPathsEmptyBases(t *testing.T) {
	got := BuildPaths(nil, "Android")
	assert.Empty(t, got)
}

func TestValidateSegment(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		wantErr bool
	}{
		{"package name", "com.example.app", false},
		{"public dir type", "Download", false},
		{"empty", "", true},
		{"absolute", "/etc", true},
		{"parent traversal", "../com.example", true},
		{"unclean", "com.example/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSegment(tt.segment)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSegment)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
