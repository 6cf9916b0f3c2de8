package domain

import "time"

// ArtifactRecord captures one copied artifact as it was when assembly finished.
type ArtifactRecord struct {
	Source      string `json:"source,omitzero"`
	Destination string `json:"destination"`
	Digest      string `json:"digest,omitzero"`
	Size        int64  `json:"size,omitzero"`
}

// AssemblyRecord is the persisted result of one successful assembly.
type AssemblyRecord struct {
	Name      string           `json:"name,omitzero"`
	Version   string           `json:"version,omitzero"`
	OutDir    string           `json:"out_dir"`
	Artifacts []ArtifactRecord `json:"artifacts,omitzero"`
	Timestamp time.Time        `json:"timestamp,omitzero"`
}
