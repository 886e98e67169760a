// Package environ resolves the logical storage layout of the device into
// concrete filesystem paths.
//
// The platform's own path-resolution libraries are unavailable in the
// elevated execution mode this application runs under, so the layout is
// reconstructed here from first principles: partition mount points come from
// well-known environment overrides with compiled-in defaults, and per-user
// external storage is discovered by querying the host's volume-enumeration
// capability with an environment-variable fallback for older OS generations.
//
// Every derived application path has exactly the shape
//
//	<volume>/Android/<data|media|obb>/<package>[/<files|cache>]
//
// and is composed through BuildPath/BuildPaths, never by ad hoc string
// concatenation. The package performs no file I/O and does not check that
// resolved paths exist or are mounted.
//
// # Current user
//
// A process-wide context holds the resolver for the "current" user.
// InitForCurrentUser rebuilds it from the ambient user handle; the
// replacement is a single reference swap with last-writer-wins semantics,
// so user switches must be serialized externally against path lookups.
// SetUserRequired(true) flags user-agnostic lookups in the diagnostic log
// without changing their results.
//
// # Usage
//
//	// Partition roots
//	system := environ.RootDirectory()          // /system
//	vendor := environ.VendorDirectory()        // /vendor
//
//	// Per-user external storage
//	ue := environ.NewUserEnvironment(10)
//	dirs, err := ue.AppDataDirs("com.example") // /storage/emulated/10/Android/data/com.example
//
//	// Current user
//	dirs, err = environ.ExternalStorageAppCacheDirs("com.example")
package environ
