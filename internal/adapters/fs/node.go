package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/distpack/internal/core/ports"
)

const (
	// CopierNodeID is the unique identifier for the copier Graft node.
	CopierNodeID graft.ID = "adapter.fs.copier"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// VerifierNodeID is the unique identifier for the verifier Graft node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	// SizerNodeID is the unique identifier for the size reporter Graft node.
	SizerNodeID graft.ID = "adapter.fs.sizer"
)

func init() {
	graft.Register(graft.Node[ports.Copier]{
		ID:        CopierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Copier, error) {
			return NewCopier(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.Verifier, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewVerifier(hasher), nil
		},
	})

	graft.Register(graft.Node[ports.SizeReporter]{
		ID:        SizerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SizeReporter, error) {
			return NewSizer(), nil
		},
	})
}
