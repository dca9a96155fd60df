package vision

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"gocv.io/x/gocv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Frame is a decoded image normalized to 3-channel BGR, with its grayscale
// derivative. A Frame owns both Mats; Close releases them.
type Frame struct {
	BGR  gocv.Mat
	Gray gocv.Mat
}

// NewFrame wraps a 3-channel BGR Mat, taking ownership of it, and derives
// the grayscale image.
func NewFrame(bgr gocv.Mat) *Frame {
	gray := gocv.NewMat()
	gocv.CvtColor(bgr, &gray, gocv.ColorBGRToGray)
	return &Frame{BGR: bgr, Gray: gray}
}

// Close releases the frame's Mats.
func (f *Frame) Close() {
	f.BGR.Close()
	f.Gray.Close()
}

// Area returns the frame size in pixels.
func (f *Frame) Area() float64 {
	return float64(f.BGR.Rows() * f.BGR.Cols())
}

// DecodePayload turns an image payload into encoded image bytes. A
// "data:<mime>;base64," prefix is stripped and base64 text is decoded;
// binary payloads are returned unchanged.
func DecodePayload(payload []byte) ([]byte, error) {
	text := bytes.TrimSpace(payload)
	if len(text) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}

	if prefix, body, ok := bytes.Cut(text, []byte(",")); ok && isURIPrefix(prefix) {
		data, err := decodeBase64(body)
		if err != nil {
			return nil, fmt.Errorf("%w: data URI: %v", ErrDecode, err)
		}
		return data, nil
	}

	if isBase64Text(text) {
		if data, err := decodeBase64(text); err == nil {
			return data, nil
		}
	}
	return payload, nil
}

// isURIPrefix reports whether the text before the first comma is a data-URI
// header ("data:image/png;base64") rather than part of a binary payload.
func isURIPrefix(prefix []byte) bool {
	if len(prefix) > 256 {
		return false
	}
	for _, c := range prefix {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return bytes.HasPrefix(prefix, []byte("data:")) || bytes.Contains(prefix, []byte(";base64"))
}

func isBase64Text(b []byte) bool {
	for _, c := range b {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '+', c == '/', c == '=', c == '-', c == '_':
		case c == '\n', c == '\r', c == ' ', c == '\t':
		default:
			return false
		}
	}
	return true
}

func decodeBase64(b []byte) ([]byte, error) {
	clean := bytes.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, b)

	var firstErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.RawStdEncoding,
		base64.URLEncoding, base64.RawURLEncoding,
	} {
		out, err := enc.DecodeString(string(clean))
		if err == nil {
			return out, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// Decode decodes encoded image bytes into a Frame. OpenCV's codecs are tried
// first; formats it cannot read (or non-8-bit images) go through Go's image
// decoders. Any alpha channel is composited onto white.
func Decode(data []byte) (*Frame, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	bgr, err := decodeOpenCV(data)
	if err != nil {
		var goErr error
		bgr, goErr = decodeGo(data)
		if goErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, goErr)
		}
	}
	if bgr.Rows() == 0 || bgr.Cols() == 0 {
		bgr.Close()
		return nil, fmt.Errorf("%w: zero-sized image", ErrDecode)
	}
	return NewFrame(bgr), nil
}

func decodeOpenCV(data []byte) (gocv.Mat, error) {
	raw, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer raw.Close()

	if raw.Empty() {
		return gocv.Mat{}, errors.New("opencv: unrecognized image data")
	}
	return toBGR(raw)
}

// toBGR normalizes an 8-bit Mat of 1, 3 or 4 channels to a new 3-channel BGR Mat.
func toBGR(src gocv.Mat) (gocv.Mat, error) {
	switch src.Type() {
	case gocv.MatTypeCV8UC3:
		return src.Clone(), nil
	case gocv.MatTypeCV8UC1:
		dst := gocv.NewMat()
		gocv.CvtColor(src, &dst, gocv.ColorGrayToBGR)
		return dst, nil
	case gocv.MatTypeCV8UC4:
		return compositeOnWhite(src)
	}
	return gocv.Mat{}, fmt.Errorf("unsupported pixel format: %d channels, type %d", src.Channels(), int(src.Type()))
}

// compositeOnWhite blends a BGRA Mat over a white canvas. Transparent canvas
// pixels become white instead of whatever color they happen to store.
func compositeOnWhite(bgra gocv.Mat) (gocv.Mat, error) {
	rows, cols := bgra.Rows(), bgra.Cols()
	pix := bgra.ToBytes()
	out := make([]byte, rows*cols*3)

	for i, j := 0, 0; i+3 < len(pix) && j+2 < len(out); i, j = i+4, j+3 {
		alpha := float64(pix[i+3]) / 255.0
		for c := 0; c < 3; c++ {
			out[j+c] = uint8(float64(pix[i+c])*alpha + 255.0*(1.0-alpha))
		}
	}

	return matFromBytes(rows, cols, gocv.MatTypeCV8UC3, out)
}

func decodeGo(data []byte) (gocv.Mat, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return gocv.Mat{}, err
	}
	return imageToMat(img)
}

// imageToMat converts a Go image.Image to a BGR Mat, compositing
// translucent pixels onto white.
func imageToMat(src image.Image) (gocv.Mat, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return gocv.Mat{}, errors.New("zero-sized image")
	}

	out := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// RGBA is alpha-premultiplied, so adding the uncovered share of
			// white completes the blend. Convert from 16-bit to 8-bit BGR.
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			bg := 0xffff - a
			i := (y*w + x) * 3
			out[i+0] = uint8((b + bg) >> 8)
			out[i+1] = uint8((g + bg) >> 8)
			out[i+2] = uint8((r + bg) >> 8)
		}
	}

	return matFromBytes(h, w, gocv.MatTypeCV8UC3, out)
}

// matFromBytes builds a Mat that owns a copy of data. NewMatFromBytes alone
// keeps pointing at the Go slice.
func matFromBytes(rows, cols int, mt gocv.MatType, data []byte) (gocv.Mat, error) {
	tmp, err := gocv.NewMatFromBytes(rows, cols, mt, data)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to build mat: %w", err)
	}
	defer tmp.Close()
	return tmp.Clone(), nil
}
