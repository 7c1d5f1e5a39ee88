// Package export renders a read-only snapshot of a pack — its name and
// derived sections — as a plain-text or PDF checklist. Export always
// reflects the full item set, never the active filter.
package export

import (
	"errors"

	"github.com/packonce/packonce/internal/checklist"
	"github.com/packonce/packonce/internal/model"
)

// ErrProRequired signals that PDF export was requested without the
// entitlement. Callers show an upsell surface instead of an error.
var ErrProRequired = errors.New("pdf export requires an active pro entitlement")

// Result is a finished export artifact.
type Result struct {
	Format   string // model.ExportFormatText or model.ExportFormatPDF
	Data     []byte
	FellBack bool // true when a PDF render failed and text was used instead
}

// Exporter selects and runs a renderer based on the user's format
// preference and entitlement status.
type Exporter struct {
	// Format is the preferred output format.
	Format string

	// ProActive is the externally supplied entitlement flag. The
	// exporter reads it, never computes it.
	ProActive bool

	// renderPDF defaults to RenderPDF; tests swap it to exercise the
	// fall-back path.
	renderPDF func(packName string, sections []checklist.Section) ([]byte, error)
}

// Export renders the pack snapshot. PDF is gated by the entitlement; a
// failing PDF render falls back to the text checklist rather than
// surfacing an error.
func (e Exporter) Export(pack *model.Pack) (Result, error) {
	sections := checklist.Build(pack.Items, checklist.Options{Filter: checklist.FilterAll})

	if e.Format != model.ExportFormatPDF {
		return Result{
			Format: model.ExportFormatText,
			Data:   []byte(RenderText(pack.Name, sections)),
		}, nil
	}

	if !e.ProActive {
		return Result{}, ErrProRequired
	}

	render := e.renderPDF
	if render == nil {
		render = RenderPDF
	}
	data, err := render(pack.Name, sections)
	if err != nil {
		return Result{
			Format:   model.ExportFormatText,
			Data:     []byte(RenderText(pack.Name, sections)),
			FellBack: true,
		}, nil
	}

	return Result{Format: model.ExportFormatPDF, Data: data}, nil
}
