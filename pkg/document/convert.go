package document

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/plotkit/pkg/errors"
)

// Raster and print formats produced from the rendered SVG.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// maxScale bounds the PNG zoom factor.
const maxScale = 16

// converter is the librsvg command line tool used for PDF and PNG export.
var converter = "rsvg-convert"

// ConvertOptions selects the output of [Convert].
type ConvertOptions struct {
	Format string  // FormatPDF or FormatPNG
	Scale  float64 // PNG zoom factor, 0 means 1
}

func (o ConvertOptions) args() ([]string, error) {
	args := []string{"--format", o.Format}
	switch o.Format {
	case FormatPDF:
	case FormatPNG:
		scale := o.Scale
		if scale == 0 {
			scale = 1
		}
		if scale < 0 || scale > maxScale {
			return nil, errors.New(errors.ErrCodeInvalidInput, "png scale %g out of range (0, %d]", o.Scale, maxScale)
		}
		args = append(args, "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot convert the entity graph to %q", o.Format)
	}
	return args, nil
}

// Convert turns an SVG produced by [RenderSVG] into a PDF or PNG by piping
// it through rsvg-convert.
func Convert(ctx context.Context, svg []byte, opts ConvertOptions) ([]byte, error) {
	args, err := opts.args()
	if err != nil {
		return nil, err
	}
	if len(svg) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no SVG to convert")
	}
	bin, err := exec.LookPath(converter)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s export needs %s (brew install librsvg, apt install librsvg2-bin)", opts.Format, converter)
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", converter, strings.TrimSpace(stderr.String()))
	}
	if out.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "%s wrote no %s output", converter, opts.Format)
	}
	return out.Bytes(), nil
}

// ToPDF converts a rendered entity graph to PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return Convert(ctx, svg, ConvertOptions{Format: FormatPDF})
}

// ToPNG converts a rendered entity graph to PNG at the given zoom factor.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return Convert(ctx, svg, ConvertOptions{Format: FormatPNG, Scale: scale})
}
