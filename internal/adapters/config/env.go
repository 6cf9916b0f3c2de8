package config

import (
	"errors"
	"strconv"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Overrides holds settings taken from the process environment.
// Set fields win over the config file.
type Overrides struct {
	OutDir       string `env:"DISTPACK_OUT_DIR"`
	Manifest     string `env:"DISTPACK_MANIFEST"`
	StateFile    string `env:"DISTPACK_STATE_FILE"`
	EnsureOutDir string `env:"DISTPACK_ENSURE_OUT_DIR"`
}

// ParseOverrides loads Overrides from environment variables.
func ParseOverrides() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, errors.Join(domain.ErrEnvParseFailed, zerr.Wrap(err, "parse env"))
	}
	return o, nil
}

// Apply copies every set override onto the distfile.
func (o Overrides) Apply(d *Distfile) error {
	if o.OutDir != "" {
		d.OutDir = o.OutDir
	}
	if o.Manifest != "" {
		d.Manifest = o.Manifest
	}
	if o.StateFile != "" {
		d.StateFile = o.StateFile
	}
	if o.EnsureOutDir != "" {
		v, err := strconv.ParseBool(o.EnsureOutDir)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "parse env"), "DISTPACK_ENSURE_OUT_DIR", o.EnsureOutDir)
			return errors.Join(domain.ErrEnvParseFailed, err)
		}
		d.EnsureOutDir = &v
	}
	return nil
}
