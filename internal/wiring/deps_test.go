package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/distpack/internal/engine/pipeline"
	_ "go.trai.ch/distpack/internal/wiring"
)

// TestGraftNodesResolve ensures every registered node can be built from the wired graph.
func TestGraftNodesResolve(t *testing.T) {
	ctx := context.Background()

	loader, _, err := graft.ExecuteFor[ports.ConfigLoader](ctx)
	require.NoError(t, err)
	assert.NotNil(t, loader)

	verifier, _, err := graft.ExecuteFor[ports.Verifier](ctx)
	require.NoError(t, err)
	assert.NotNil(t, verifier)

	stores, _, err := graft.ExecuteFor[ports.StoreOpener](ctx)
	require.NoError(t, err)
	assert.NotNil(t, stores)

	pl, _, err := graft.ExecuteFor[*pipeline.Pipeline](ctx)
	require.NoError(t, err)
	assert.NotNil(t, pl)
}

// TestGraftDependencies is kept skipped: graft.AssertDepsValid infers the
// dependency ID from the package of the type passed to Dep[T], and every
// port here lives in the shared ports package.
func TestGraftDependencies(t *testing.T) {
	t.Skip("graft.AssertDepsValid cannot map shared ports interfaces to node IDs")
	graft.AssertDepsValid(t, "../../internal")
}
