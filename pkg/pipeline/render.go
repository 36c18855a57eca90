package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/graph"
	"github.com/matzehuels/orgchart/pkg/render"
	"github.com/matzehuels/orgchart/pkg/render/nodelink"
	"github.com/matzehuels/orgchart/pkg/render/svg"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// RenderFromLayout generates output artifacts in the requested formats.
// popups must already reflect the viewer's capabilities. r resolves
// manager names for popups and backs the graph format; it may be nil when
// neither is requested.
func RenderFromLayout(ctx context.Context, l graph.Layout, r *roster.Roster, popups bool, opts Options) (map[string][]byte, error) {
	c, err := graph.ToChart(l)
	if err != nil {
		return nil, err
	}

	var (
		svgData []byte
		dot     string
	)
	chartSVG := func() []byte {
		if svgData == nil {
			svgOpts := []svg.Option{svg.WithTitle(opts.Title)}
			if opts.Legend {
				svgOpts = append(svgOpts, svg.WithLegend())
			}
			if popups {
				svgOpts = append(svgOpts, svg.WithPopups())
			}
			if r != nil {
				svgOpts = append(svgOpts, svg.WithRoster(r))
			}
			svgData = svg.Render(c, svgOpts...)
		}
		return svgData
	}
	chartDOT := func() string {
		if dot == "" {
			dot = nodelink.ToDOT(c, nodelink.Options{Detailed: opts.Detailed, Clusters: opts.Clusters})
		}
		return dot
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = chartSVG()
		case FormatJSON:
			data, err = graph.MarshalLayout(l)
		case FormatDOT:
			data = []byte(chartDOT())
		case FormatGVSVG:
			data, err = nodelink.RenderSVG(ctx, chartDOT())
		case FormatPDF:
			data, err = render.ToPDF(ctx, chartSVG())
		case FormatPNG:
			data, err = render.ToPNG(ctx, chartSVG(), opts.Scale)
		case FormatGraph:
			if r == nil {
				return nil, errors.New(errors.ErrCodeUnsupported, "graph format needs the roster, not only a layout")
			}
			data, err = graph.MarshalGraph(r)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
