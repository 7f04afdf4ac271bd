package actor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidTransform = errors.New("invalid transform")

// FormatTransform serializes m as a CSS matrix3d() in column-major order.
// Values use the shortest representation that parses back to the same float64.
func FormatTransform(m mgl64.Mat4) string {
	var sb strings.Builder
	sb.WriteString("matrix3d(")
	for i, v := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteString(")")

	return sb.String()
}

// ParseTransform reads a CSS transform back into an orientation.
// It accepts matrix3d() with 16 values, the 2D matrix() form with 6 values, and none.
func ParseTransform(s string) (MatrixOrientation, error) {
	s = strings.TrimSpace(s)
	if s == "none" {
		return NewMatrixOrientation(), nil
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return MatrixOrientation{}, fmt.Errorf("%w: %q", ErrInvalidTransform, s)
	}

	name := strings.TrimSpace(s[:open])
	values, err := parseValues(s[open+1 : len(s)-1])
	if err != nil {
		return MatrixOrientation{}, fmt.Errorf("%w: %v", ErrInvalidTransform, err)
	}

	switch name {
	case "matrix3d":
		if len(values) != 16 {
			return MatrixOrientation{}, fmt.Errorf("%w: matrix3d expects 16 values, got %d", ErrInvalidTransform, len(values))
		}
		var m mgl64.Mat4
		copy(m[:], values)
		return MatrixOrientation{Matrix: m}, nil
	case "matrix":
		if len(values) != 6 {
			return MatrixOrientation{}, fmt.Errorf("%w: matrix expects 6 values, got %d", ErrInvalidTransform, len(values))
		}
		// matrix(a, b, c, d, e, f) is the affine 2D subset of matrix3d
		m := mgl64.Ident4()
		m[0], m[1] = values[0], values[1]
		m[4], m[5] = values[2], values[3]
		m[12], m[13] = values[4], values[5]
		return MatrixOrientation{Matrix: m}, nil
	default:
		return MatrixOrientation{}, fmt.Errorf("%w: unsupported function %q", ErrInvalidTransform, name)
	}
}

func parseValues(list string) ([]float64, error) {
	fields := strings.Split(list, ",")
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}
