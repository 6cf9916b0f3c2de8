package domain

import "go.trai.ch/zerr"

var (
	// ErrFileAccess is returned when an artifact source is missing or unreadable,
	// or when its destination cannot be written.
	ErrFileAccess = zerr.New("file access failed")

	// ErrNotRegularFile is returned when a copy source exists but is not a regular file.
	ErrNotRegularFile = zerr.New("source is not a regular file")

	// ErrSourceIsDestination is returned when a copy would read and write the same file.
	ErrSourceIsDestination = zerr.New("copy source and destination are the same file")

	// ErrIntegrityMismatch is returned when a copied artifact no longer matches its recorded digest.
	ErrIntegrityMismatch = zerr.New("artifact digest mismatch")

	// ErrBundleIncomplete is returned when one or more output format entries are missing.
	ErrBundleIncomplete = zerr.New("bundle is missing output format entries")

	// ErrDestinationOutsideOutDir is returned when a copy destination resolves outside the output directory.
	ErrDestinationOutsideOutDir = zerr.New("copy destination is outside the output directory")

	// ErrDuplicateDestination is returned when two copy specs share the same destination.
	ErrDuplicateDestination = zerr.New("duplicate copy destination")

	// ErrEmptyCopyPath is returned when a copy spec has an empty source or destination.
	ErrEmptyCopyPath = zerr.New("copy spec requires both src and dest")

	// ErrEmptyOutDir is returned when no output directory is configured.
	ErrEmptyOutDir = zerr.New("output directory must not be empty")

	// ErrEmptyBuildCommand is returned when a build step has no command.
	ErrEmptyBuildCommand = zerr.New("build step requires a command")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown schema version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version, expected \"1\"")

	// ErrInvalidSizeLimit is returned when the chunk size warning limit is not positive.
	ErrInvalidSizeLimit = zerr.New("chunk size warning limit must be positive")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrEnvParseFailed is returned when environment overrides cannot be parsed.
	ErrEnvParseFailed = zerr.New("failed to parse environment overrides")

	// ErrManifestReadFailed is returned when the package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when the package manifest is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrManifestMissingField is returned when the manifest lacks a name or version.
	ErrManifestMissingField = zerr.New("package manifest is missing a required field")

	// ErrStoreReadFailed is returned when the assembly state file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read assembly state")

	// ErrStoreUnmarshalFailed is returned when the assembly state file cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal assembly state")

	// ErrStoreMarshalFailed is returned when the assembly state cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal assembly state")

	// ErrStoreWriteFailed is returned when the assembly state file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write assembly state")

	// ErrRecordNotFound is returned when no assembly has been recorded for an output directory.
	ErrRecordNotFound = zerr.New("no assembly recorded for output directory")

	// ErrBuildStepFailed is returned when an external build step exits unsuccessfully.
	ErrBuildStepFailed = zerr.New("build step failed")

	// ErrPostBuildHookFailed is returned when a post-build hook returns an error.
	ErrPostBuildHookFailed = zerr.New("post-build hook failed")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")
)
