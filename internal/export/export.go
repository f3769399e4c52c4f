// Package export turns a stored document into a downloadable file through a
// pluggable renderer. Unlike storage corruption, export failures propagate
// to the caller: the UI is expected to show them.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"invoiceease/internal/core"
)

// ErrElementNotFound is returned when the referenced document does not
// resolve to anything renderable.
var ErrElementNotFound = errors.New("export: element not found")

// Renderer produces the downloadable bytes for a document.
type Renderer interface {
	// Render returns the file body and its extension (without dot).
	Render(ctx context.Context, doc *core.Document, profile *core.BusinessProfile) ([]byte, string, error)
}

// Exporter writes rendered documents into an output directory.
type Exporter struct {
	renderer Renderer
	outDir   string
}

// NewExporter constructs an Exporter writing into outDir.
func NewExporter(renderer Renderer, outDir string) *Exporter {
	return &Exporter{renderer: renderer, outDir: outDir}
}

// Export renders doc and writes it to disk, returning the full path.
// The filename derives from the document number, falling back to the id.
func (e *Exporter) Export(ctx context.Context, doc *core.Document, profile *core.BusinessProfile) (string, error) {
	if doc == nil {
		return "", ErrElementNotFound
	}

	body, ext, err := e.renderer.Render(ctx, doc, profile)
	if err != nil {
		return "", fmt.Errorf("render document %s: %w", doc.ID, err)
	}

	name := doc.Number
	if name == "" {
		name = doc.ID
	}
	path := filepath.Join(e.outDir, sanitizeFilename(name)+"."+ext)

	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

// sanitizeFilename keeps filenames portable across filesystems.
func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == '-' || r == '_' || r == '.':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	s := strings.Trim(string(out), "._")
	if s == "" {
		return "document"
	}
	return s
}
