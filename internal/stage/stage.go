// Package stage resolves one instruction against its ordered list of figure
// images: every image is classified, then the selector picks an index.
package stage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"shape-selector/internal/selector"
	"shape-selector/internal/shape"
)

// ErrUnreadable indicates a stage file or an image it references could not be read.
var ErrUnreadable = errors.New("unreadable stage input")

// Stage is one instruction with its candidate figures. Position in Shapes
// is the candidate's identity.
type Stage struct {
	Instruction string       `json:"instruction" yaml:"instruction"`
	Shapes      []ShapeInput `json:"shapes" yaml:"shapes"`
}

// ShapeInput describes one candidate. Img is an image payload (data URI,
// base64 text or raw bytes as a string); in stage files it may also be a
// path to an image file. Result supplies a precomputed classification and
// skips the image entirely. The dimensions size a precomputed result that
// carries no area; a candidate with neither image nor result has zero area.
type ShapeInput struct {
	Img    string        `json:"img,omitempty" yaml:"img,omitempty"`
	Result *shape.Result `json:"result,omitempty" yaml:"result,omitempty"`

	selector.Dimensions `yaml:",inline"`

	// Payload overrides Img when set. Load fills it from image files.
	Payload []byte `json:"-" yaml:"-"`
}

// payload returns the image bytes to classify, or nil.
func (s ShapeInput) payload() []byte {
	if len(s.Payload) > 0 {
		return s.Payload
	}
	if strings.TrimSpace(s.Img) == "" {
		return nil
	}
	return []byte(s.Img)
}

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// Load reads a stage from a YAML or JSON file. Img entries naming an image
// file (by extension) are read relative to the stage file's directory.
func Load(path string) (*Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	st, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", path, err)
	}
	if err := st.ResolveFiles(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return st, nil
}

// Parse decodes a stage document. JSON is accepted as YAML.
func Parse(data []byte) (*Stage, error) {
	var st Stage
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

// ResolveFiles loads every Img that names an image file into Payload.
// Relative paths are resolved against dir.
func (st *Stage) ResolveFiles(dir string) error {
	for i := range st.Shapes {
		s := &st.Shapes[i]
		if !looksLikePath(s.Img) {
			continue
		}
		p := s.Img
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("%w: shape %d: %v", ErrUnreadable, i, err)
		}
		s.Payload = data
	}
	return nil
}

func looksLikePath(img string) bool {
	img = strings.TrimSpace(img)
	if img == "" || len(img) > 4096 || strings.HasPrefix(img, "data:") {
		return false
	}
	return imageExts[strings.ToLower(filepath.Ext(img))]
}
