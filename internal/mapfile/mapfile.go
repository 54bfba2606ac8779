// Package mapfile reads and writes battle map files.
//
// A file is the 6-byte magic "battle", one version byte, then width*height
// tile codes in row-major order. Dimensions are not stored; both sides agree
// on them.
package mapfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/telemetry"
)

const (
	// Magic opens every map file.
	Magic = "battle"
	// Version is the only format version written and understood.
	Version byte = 1
)

var (
	// ErrBadHeader is returned when a file does not start with Magic.
	ErrBadHeader = errors.New("header did not match")
	// ErrUnsupportedVersion is returned for any version byte other than Version.
	ErrUnsupportedVersion = errors.New("unsupported map version")
)

// Read decodes a map of the given size.
func Read(r io.Reader, width, height int) (*grid.Grid, error) {
	header := make([]byte, len(Magic)+1)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !bytes.Equal(header[:len(Magic)], []byte(Magic)) {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, header[:len(Magic)])
	}
	if v := header[len(Magic)]; v != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	body := make([]byte, width*height)
	if _, err := io.ReadFull(r, body); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("read tiles: %w", err)
	}
	return grid.FromBytes(width, height, body)
}

// Write encodes g.
func Write(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	// bufio errors are sticky; Flush reports the first one.
	bw.WriteString(Magic)
	bw.WriteByte(Version)
	bw.Write(g.Bytes())
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}

// Load reads a map file from disk.
func Load(ctx context.Context, path string, width, height int) (*grid.Grid, error) {
	_, span := telemetry.Tracer("mapfile").Start(ctx, "mapfile.load")
	defer span.End()
	span.SetAttributes(attribute.String("map.path", path))

	f, err := os.Open(path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("open map %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(bufio.NewReader(f), width, height)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return g, nil
}

// Save writes g to path, replacing any existing file.
func Save(ctx context.Context, path string, g *grid.Grid) error {
	_, span := telemetry.Tracer("mapfile").Start(ctx, "mapfile.save")
	defer span.End()
	span.SetAttributes(
		attribute.String("map.path", path),
		attribute.Int("map.cells", g.Len()),
	)

	f, err := os.Create(path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("could not save file %s: %w", path, err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("save map %s: %w", path, err)
	}
	return f.Close()
}
