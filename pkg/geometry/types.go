// Package geometry provides the integer outline types shared by the vision pipeline.
package geometry

import (
	"image"
	"math"
)

// PointInt represents a 2D point with integer pixel coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p PointInt) Distance(other PointInt) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// RectInt represents a rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns Width*Height.
func (r RectInt) Area() int {
	return r.Width * r.Height
}

// AspectRatio returns Width/Height, or 1.0 for a zero-height rectangle.
func (r RectInt) AspectRatio() float64 {
	if r.Height == 0 {
		return 1.0
	}
	return float64(r.Width) / float64(r.Height)
}

// Outline is a closed polygonal boundary. The last point connects back to the first.
type Outline []PointInt

// OutlineFromPoints copies image points into a new Outline.
func OutlineFromPoints(pts []image.Point) Outline {
	o := make(Outline, len(pts))
	for i, p := range pts {
		o[i] = PointInt{X: p.X, Y: p.Y}
	}
	return o
}

// ImagePoints returns the outline as image points, the form gocv expects.
func (o Outline) ImagePoints() []image.Point {
	pts := make([]image.Point, len(o))
	for i, p := range o {
		pts[i] = image.Point{X: p.X, Y: p.Y}
	}
	return pts
}

// Area returns the enclosed area using the shoelace formula.
// Matches cv::contourArea for a non-oriented contour.
func (o Outline) Area() float64 {
	return polygonArea(o)
}

// Perimeter returns the closed arc length of the outline.
func (o Outline) Perimeter() float64 {
	n := len(o)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += o[i].Distance(o[(i+1)%n])
	}
	return sum
}

// BoundingRect returns the axis-aligned bounding box. Width and height are
// inclusive pixel counts, as cv::boundingRect reports them.
func (o Outline) BoundingRect() RectInt {
	if len(o) == 0 {
		return RectInt{}
	}
	minX, minY := o[0].X, o[0].Y
	maxX, maxY := minX, minY
	for _, p := range o[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return RectInt{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}

// HullArea returns the area enclosed by the outline's convex hull.
func (o Outline) HullArea() float64 {
	return polygonArea(ConvexHull(o))
}

// Circularity returns 4*pi*area/perimeter^2, or 0 for a zero perimeter.
// A perfect circle scores 1.0; pixel discretization can push it slightly above.
func (o Outline) Circularity() float64 {
	perimeter := o.Perimeter()
	if perimeter == 0 {
		return 0
	}
	return 4 * math.Pi * o.Area() / (perimeter * perimeter)
}

func polygonArea(pts []PointInt) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var twice int64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		twice += int64(pts[i].X)*int64(pts[j].Y) - int64(pts[j].X)*int64(pts[i].Y)
	}
	if twice < 0 {
		twice = -twice
	}
	return float64(twice) / 2
}
