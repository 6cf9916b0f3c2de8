package progrock

import (
	"fmt"
	"io"
	"strings"

	"github.com/vito/progrock"
	"go.trai.ch/distpack/internal/core/domain"
)

// Vertex records one copy or build step as a progrock vertex.
type Vertex struct {
	done   func(error)
	stdout io.Writer
	stderr io.Writer
}

func newVertex(rec *progrock.VertexRecorder) *Vertex {
	return &Vertex{
		done:   rec.Done,
		stdout: rec.Stdout(),
		stderr: rec.Stderr(),
	}
}

// Stdout returns the vertex output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.stdout
}

// Stderr returns the vertex error stream.
func (v *Vertex) Stderr() io.Writer {
	return v.stderr
}

// Log writes msg to the vertex. Warnings and errors go to the error stream.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.stdout
	if level >= domain.LogLevelWarn {
		w = v.stderr
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", strings.ToLower(level.String()), msg)
}

// Complete finishes the vertex, marking it failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.done(err)
}
