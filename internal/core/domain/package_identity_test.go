package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/distpack/internal/core/domain"
)

func TestPackageIdentity_SuccessMessage(t *testing.T) {
	id := domain.PackageIdentity{Name: "fighting-design", Version: "0.14.0"}

	assert.Equal(t, "fighting-design 0.14.0 版本打包成功 🎉🎉🎉", id.SuccessMessage())
}

func TestPackageIdentity_Validate(t *testing.T) {
	assert.NoError(t, domain.PackageIdentity{Name: "x", Version: "1.0.0"}.Validate())

	err := domain.PackageIdentity{Version: "1.0.0"}.Validate()
	require.ErrorIs(t, err, domain.ErrManifestMissingField)

	err = domain.PackageIdentity{Name: "x"}.Validate()
	require.ErrorIs(t, err, domain.ErrManifestMissingField)
}

func TestOutputFormat_EntryPath(t *testing.T) {
	formats := domain.DefaultOutputFormats()
	require.Len(t, formats, 3)

	assert.Equal(t, "dist/dist/index.umd.js", formats[0].EntryPath("dist"))
	assert.Equal(t, "dist/es/index.js", formats[1].EntryPath("dist"))
	assert.Equal(t, "dist/lib/index.js", formats[2].EntryPath("dist"))
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "INFO", domain.LogLevel(99).String())
}
