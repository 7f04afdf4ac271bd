package actor

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFormatTransform_Identity(t *testing.T) {
	got := NewMatrixOrientation().String()
	want := "matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1)"

	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFormatTransform_ColumnMajor(t *testing.T) {
	m := mgl64.Ident4()
	m[12], m[13], m[14] = 10, 20, 30 // translation column

	got := FormatTransform(m)
	if !strings.HasSuffix(got, "10, 20, 30, 1)") {
		t.Errorf("FormatTransform() = %q, want translation in the last column", got)
	}
}

func TestParseTransform_RoundTrip(t *testing.T) {
	orientations := []Orientation{
		NewOrientation().Rotate(mgl64.Vec3{0.5, 1, 0}, 37.5).Rotate(mgl64.Vec3{1, 0, 0}, -12),
		NewMatrixOrientation().Rotate(mgl64.Vec3{0, 100, 0}, 468.75*0.001).Rotate(mgl64.Vec3{-1, 0, 2}, 181),
	}

	for _, o := range orientations {
		parsed, err := ParseTransform(o.String())
		if err != nil {
			t.Fatalf("ParseTransform(%q) error: %v", o.String(), err)
		}

		if parsed.Mat4() != o.Mat4() {
			t.Errorf("round trip lost information:\n got %v\nwant %v", parsed.Mat4(), o.Mat4())
		}
		if parsed.String() != o.String() {
			t.Errorf("round trip changed representation: %q vs %q", parsed.String(), o.String())
		}
	}
}

func TestParseTransform_ComposesAfterParse(t *testing.T) {
	axis := mgl64.Vec3{0, 1, 0}
	o := NewOrientation().Rotate(axis, 20)

	parsed, err := ParseTransform(o.String())
	if err != nil {
		t.Fatalf("ParseTransform error: %v", err)
	}

	got := parsed.Rotate(axis, 30).Mat4()
	want := o.Rotate(axis, 30).Mat4()
	if !mat4AlmostEqual(got, want, 1e-12) {
		t.Errorf("parsed orientation composes to %v, want %v", got, want)
	}
}

func TestParseTransform_Forms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(m mgl64.Mat4) bool
	}{
		{
			name:  "none",
			input: "none",
			check: func(m mgl64.Mat4) bool { return m == mgl64.Ident4() },
		},
		{
			name:  "2D matrix",
			input: "matrix(0, 1, -1, 0, 10, 20)",
			check: func(m mgl64.Mat4) bool {
				return m[0] == 0 && m[1] == 1 && m[4] == -1 && m[5] == 0 &&
					m[12] == 10 && m[13] == 20 && m[10] == 1 && m[15] == 1
			},
		},
		{
			name:  "whitespace",
			input: "  matrix3d(1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,0,1) ",
			check: func(m mgl64.Mat4) bool { return m == mgl64.Ident4() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := ParseTransform(tt.input)
			if err != nil {
				t.Fatalf("ParseTransform(%q) error: %v", tt.input, err)
			}
			if !tt.check(o.Mat4()) {
				t.Errorf("ParseTransform(%q) = %v", tt.input, o.Mat4())
			}
		})
	}
}

func TestParseTransform_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"garbage",
		"matrix3d(1, 0, 0)",
		"matrix(1, 0, 0, 1)",
		"matrix3d(a, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1)",
		"rotate(45deg)",
		"matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1",
	}

	for _, input := range inputs {
		if _, err := ParseTransform(input); !errors.Is(err, ErrInvalidTransform) {
			t.Errorf("ParseTransform(%q) error = %v, want ErrInvalidTransform", input, err)
		}
	}
}
