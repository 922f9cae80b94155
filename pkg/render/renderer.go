package render

import (
	"context"

	"github.com/goliatone/go-reportgen/pkg/model"
)

// Renderer converts a ReportModel into a byte representation (HTML, ANSI
// text, JSON, etc.). Renderers never mutate the model; state flows one way.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, report model.ReportModel, options RenderOptions) ([]byte, error)
}
