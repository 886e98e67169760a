package environ

import "os"

// Environment variables overriding the partition mount points. The platform
// sets these before any application code runs; an empty value counts as unset.
const (
	envAndroidRoot    = "ANDROID_ROOT"
	envAndroidData    = "ANDROID_DATA"
	envAndroidExpand  = "ANDROID_EXPAND"
	envAndroidStorage = "ANDROID_STORAGE"
	envDownloadCache  = "DOWNLOAD_CACHE"
	envOemRoot        = "OEM_ROOT"
	envOdmRoot        = "ODM_ROOT"
	envVendorRoot     = "VENDOR_ROOT"
	envProductRoot    = "PRODUCT_ROOT"
	envSystemExtRoot  = "SYSTEM_EXT_ROOT"
	envApexRoot       = "APEX_ROOT"
)

// Resolved once at package initialization. Later changes to the process
// environment never affect these values.
var (
	dirAndroidRoot    = resolveDirectory(envAndroidRoot, "/system")
	dirAndroidData    = resolveDirectory(envAndroidData, "/data")
	dirAndroidExpand  = resolveDirectory(envAndroidExpand, "/mnt/expand")
	dirAndroidStorage = resolveDirectory(envAndroidStorage, "/storage")
	dirDownloadCache  = resolveDirectory(envDownloadCache, "/cache")
	dirOemRoot        = resolveDirectory(envOemRoot, "/oem")
	dirOdmRoot        = resolveDirectory(envOdmRoot, "/odm")
	dirVendorRoot     = resolveDirectory(envVendorRoot, "/vendor")
	dirProductRoot    = resolveDirectory(envProductRoot, "/product")
	dirSystemExtRoot  = resolveDirectory(envSystemExtRoot, "/system_ext")
	dirApexRoot       = resolveDirectory(envApexRoot, "/apex")
)

// resolveDirectory returns the value of variable when set and non-empty,
// and fallback otherwise.
func resolveDirectory(variable, fallback string) string {
	if path := os.Getenv(variable); path != "" {
		return path
	}
	return fallback
}

// PartitionRoot describes one named partition mount and how it was resolved.
type PartitionRoot struct {
	Name     string
	Variable string
	Default  string
	Path     string
}

// PartitionRoots returns the full partition table as resolved at startup.
func PartitionRoots() []PartitionRoot {
	return []PartitionRoot{
		{Name: "system", Variable: envAndroidRoot, Default: "/system", Path: dirAndroidRoot},
		{Name: "data", Variable: envAndroidData, Default: "/data", Path: dirAndroidData},
		{Name: "expand", Variable: envAndroidExpand, Default: "/mnt/expand", Path: dirAndroidExpand},
		{Name: "storage", Variable: envAndroidStorage, Default: "/storage", Path: dirAndroidStorage},
		{Name: "download-cache", Variable: envDownloadCache, Default: "/cache", Path: dirDownloadCache},
		{Name: "oem", Variable: envOemRoot, Default: "/oem", Path: dirOemRoot},
		{Name: "odm", Variable: envOdmRoot, Default: "/odm", Path: dirOdmRoot},
		{Name: "vendor", Variable: envVendorRoot, Default: "/vendor", Path: dirVendorRoot},
		{Name: "product", Variable: envProductRoot, Default: "/product", Path: dirProductRoot},
		{Name: "system-ext", Variable: envSystemExtRoot, Default: "/system_ext", Path: dirSystemExtRoot},
		{Name: "apex", Variable: envApexRoot, Default: "/apex", Path: dirApexRoot},
	}
}

// RootDirectory returns the root of the "system" partition holding the core
// OS. Always present and mounted read-only.
func RootDirectory() string {
	return dirAndroidRoot
}

// OemDirectory returns the root of the "oem" partition holding OEM
// customizations, if any. If present, the partition is mounted read-only.
func OemDirectory() string {
	return dirOemRoot
}

// OdmDirectory returns the root of the "odm" partition holding ODM
// customizations, if any. If present, the partition is mounted read-only.
func OdmDirectory() string {
	return dirOdmRoot
}

// VendorDirectory returns the root of the "vendor" partition that holds
// vendor-provided software that should persist across simple reflashing of
// the "system" partition.
func VendorDirectory() string {
	return dirVendorRoot
}

// ProductDirectory returns the root of the "product" partition holding
// product-specific customizations, if any.
func ProductDirectory() string {
	return dirProductRoot
}

// SystemExtDirectory returns the root of the "system_ext" partition holding
// the system partition's extension, if any.
func SystemExtDirectory() string {
	return dirSystemExtRoot
}

// ApexDirectory returns the root of the "apex" partition holding updatable
// system components.
func ApexDirectory() string {
	return dirApexRoot
}

// ExpandDirectory returns the mount point for expanded (adopted) storage.
func ExpandDirectory() string {
	return dirAndroidExpand
}

// StorageDirectory returns the generic mount point for per-user storage.
func StorageDirectory() string {
	return dirAndroidStorage
}

// DownloadCacheDirectory returns the download/cache content directory.
func DownloadCacheDirectory() string {
	return dirDownloadCache
}

// DataDirectory returns the user data directory.
func DataDirectory() string {
	return dirAndroidData
}

// DataSystemDirectory returns the system directory under the data partition.
func DataSystemDirectory() string {
	return BuildPath(DataDirectory(), "system")
}

// DataAppDirectory returns the installed-app directory under the data
// partition.
func DataAppDirectory() string {
	return BuildPath(DataDirectory(), "app")
}

// DataDataDirectory returns the per-app private data directory under the
// data partition.
func DataDataDirectory() string {
	return BuildPath(DataDirectory(), "data")
}
