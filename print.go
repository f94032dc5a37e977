package rayops

import (
	"fmt"
	"io"
	"strings"
)

// Printer renders the package's value types as text. Its methods never
// mutate the values they print.
type Printer struct {
	opts Options
}

func NewPrinter(opts Options) *Printer {
	return &Printer{opts: opts}
}

// Fprint writes the textual rendering of each value to w in order,
// analogous to a chain of stream insertions. Values of the package's
// types get their structured rendering; anything else falls through to
// fmt. It returns the number of bytes written and the first error
// encountered writing to w.
func (p *Printer) Fprint(w io.Writer, vals ...any) (int, error) {
	st := printState{p: p, w: w}
	for _, v := range vals {
		st.value(v)
	}
	return st.n, st.err
}

// Sprint renders vals as Fprint would and returns the result as a
// string.
func (p *Printer) Sprint(vals ...any) string {
	var sb strings.Builder
	p.Fprint(&sb, vals...)
	return sb.String()
}

// printState threads the byte count and sticky write error through a
// chain of prints.
type printState struct {
	p   *Printer
	w   io.Writer
	n   int
	err error
}

func (st *printState) printf(format string, args ...any) {
	if st.err != nil {
		return
	}
	n, err := fmt.Fprintf(st.w, format, args...)
	st.n += n
	st.err = err
}

func (st *printState) value(v any) {
	switch v := v.(type) {
	case Vector2:
		if st.p.opts.Style == StyleComponents {
			st.printf("x=%v, y=%v", v.X, v.Y)
		} else {
			st.printf("(%v,%v)", v.X, v.Y)
		}
	case Vector3:
		if st.p.opts.Style == StyleComponents {
			st.printf("x=%v, y=%v, z=%v", v.X, v.Y, v.Z)
		} else {
			st.printf("(%v,%v,%v)", v.X, v.Y, v.Z)
		}
	case Vector4:
		if st.p.opts.Style == StyleComponents {
			st.printf("x=%v, y=%v, z=%v, w=%v", v.X, v.Y, v.Z, v.W)
		} else {
			st.printf("(%v,%v,%v,%v)", v.X, v.Y, v.Z, v.W)
		}
	case Color:
		// Channels print as unsigned integers, not control characters.
		if st.p.opts.Style == StyleComponents {
			st.printf("R=%d G=%d B=%d A=%d", v.R, v.G, v.B, v.A)
		} else {
			st.printf("(%d,%d,%d,%d)", v.R, v.G, v.B, v.A)
		}
	case Matrix:
		st.matrix(v)
	case Rectangle:
		st.printf("Rectangle corner: (%v,%v), Width=%v Height=%v", v.X, v.Y, v.Width, v.Height)
	case Image:
		st.printf("Image width=%v Height=%v Mipmap levels=%v PixelFormat number:%v type: %s ",
			v.Width, v.Height, v.Mipmaps, int32(v.Format), v.Format.Desc())
	case Texture:
		st.printf("Texture ID#: %v Width=%v Height=%v Mipmap levels=%v PixelFormat number:%v type: %s ",
			v.ID, v.Width, v.Height, v.Mipmaps, int32(v.Format), v.Format.Desc())
	case Camera2D:
		st.printf("** 2D Camera info. **\nOffset: ")
		st.value(v.Offset)
		st.printf(" Target: ")
		st.value(v.Target)
		st.printf(" Rotation: %v Zoom=%v", v.Rotation, v.Zoom)
		st.printf("\nCamera matrix\n")
		st.matrix(v.Matrix())
		st.printf("\n")
	case Camera3D:
		st.printf("*** 3D Camera info. ***\nPosition: ")
		st.value(v.Position)
		st.printf(" Target: ")
		st.value(v.Target)
		st.printf(" Up vector: ")
		st.value(v.Up)
		st.printf("\n")
		switch v.Projection {
		case CameraPerspective:
			st.printf("Projection mode: perspective.  FOV=%v degrees\n", v.Fovy)
		case CameraOrthographic:
			st.printf("Projection mode: orthographic. Near plane width=%v\n", v.Fovy)
		}
		st.printf("Camera matrix:\n")
		st.matrix(v.Matrix())
		st.printf("\n")
	case Ray:
		st.printf("Ray position: ")
		st.value(v.Position)
		st.printf(" Ray direction: ")
		st.value(v.Direction)
	case RayHitInfo:
		if v.Hit {
			st.printf("Ray hit. Distance=%v Position: ", v.Distance)
			st.value(v.Position)
			st.printf(" Surface normal: ")
			st.value(v.Normal)
		} else {
			st.printf("Ray missed.")
		}
	case BoundingBox:
		st.printf("Bounding box coordinates.  Min: ")
		st.value(v.Min)
		st.printf(" Max: ")
		st.value(v.Max)
	case NPatchInfo:
		st.printf("NPatch info:  Rectangle: ")
		st.value(v.Source)
		st.printf(" Border offsets: Left: %v Right: %v Top: %v Bottom: %v Layout: %v",
			v.Left, v.Right, v.Top, v.Bottom, v.Layout)
	case CharInfo:
		st.printf("Char info:  Char value: %v Offset X: %v Offset Y: %v Advance position X: %v",
			v.Value, v.OffsetX, v.OffsetY, v.AdvanceX)
	case Font:
		st.printf("Font info:  Base size (default char height): %v Number of characters: %v Padding around chars: %v",
			v.BaseSize, v.CharCount, v.CharPadding)
	default:
		st.printf("%v", v)
	}
}

// matrix prints four visual rows, transposing the column-major storage
// for readability. The storage itself stays column-major.
func (st *printState) matrix(m Matrix) {
	st.printf(" \t%v\t%v \t%v \t%v\n", m.M0, m.M4, m.M8, m.M12)
	st.printf(" \t%v\t%v \t%v \t%v\n", m.M1, m.M5, m.M9, m.M13)
	st.printf(" \t%v\t%v \t%v \t%v\n", m.M2, m.M6, m.M10, m.M14)
	st.printf(" \t%v\t%v \t%v \t%v\n", m.M3, m.M7, m.M11, m.M15)
}
