package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/bifrost/pkg/geom"
	"github.com/go-gl/mathgl/mgl32"
)

// OBJ format errors.
var (
	ErrInvalidOBJVertex = errors.New("invalid OBJ vertex")
	ErrInvalidOBJFace   = errors.New("invalid OBJ face")
)

// OBJ represents a parsed Wavefront OBJ mesh reduced to the triangle
// soup a bake consumes. Faces with more than three vertices are fan
// triangulated during parsing, keeping the file's winding order.
type OBJ struct {
	Verts []mgl32.Vec3
	Tris  []geom.Triangle
}

// Bounds returns the axis-aligned bounds of all vertices.
// ok is false when the mesh has no vertices.
func (o *OBJ) Bounds() (bounds geom.AABB, ok bool) {
	if len(o.Verts) == 0 {
		return geom.AABB{}, false
	}
	bounds = geom.NewAABB(o.Verts[0], o.Verts[0])
	for _, v := range o.Verts[1:] {
		bounds = bounds.Merge(geom.NewAABB(v, v))
	}
	return bounds, true
}

// ParseOBJ parses a Wavefront OBJ mesh from raw bytes. Only vertex and
// face statements are consumed; normals, texture coordinates, groups
// and materials are skipped.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseOBJVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			obj.Verts = append(obj.Verts, v)
		case "f":
			if err := obj.appendFace(fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning OBJ data: %w", err)
	}

	return obj, nil
}

// parseOBJVertex parses the coordinates of a "v" statement. A fourth
// weight component is permitted and ignored.
func parseOBJVertex(fields []string) (mgl32.Vec3, error) {
	if len(fields) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: want 3 coordinates, have %d", ErrInvalidOBJVertex, len(fields))
	}

	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("%w: %q", ErrInvalidOBJVertex, fields[i])
		}
		v[i] = float32(f)
	}
	return v, nil
}

// appendFace triangulates one "f" statement into the soup.
func (o *OBJ) appendFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: want at least 3 vertices, have %d", ErrInvalidOBJFace, len(fields))
	}

	idx := make([]int, len(fields))
	for i, tok := range fields {
		n, err := parseOBJIndex(tok, len(o.Verts))
		if err != nil {
			return err
		}
		idx[i] = n
	}

	for i := 1; i+1 < len(idx); i++ {
		o.Tris = append(o.Tris, geom.NewTriangle(o.Verts[idx[0]], o.Verts[idx[i]], o.Verts[idx[i+1]]))
	}
	return nil
}

// parseOBJIndex resolves one face token to a zero-based vertex index.
// Tokens may carry texture and normal references ("7/1/3"); only the
// vertex part is used. Negative indices count back from the last
// vertex read so far.
func parseOBJIndex(tok string, vertCount int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOBJFace, tok)
	}
	if n < 0 {
		n += vertCount
	} else {
		n--
	}
	if n < 0 || n >= vertCount {
		return 0, fmt.Errorf("%w: index %q out of range", ErrInvalidOBJFace, tok)
	}
	return n, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}
