package vision

import (
	"gocv.io/x/gocv"

	"shape-selector/internal/shape"
	"shape-selector/pkg/geometry"
)

// OutlineShape is the shape classification of a single outline.
type OutlineShape struct {
	Type        shape.Type
	Vertices    int
	Circularity float64
	Votes       map[int]int // vertex count -> number of tolerances that produced it
}

// ClassifyOutline reduces an outline to a shape label, voted vertex count
// and circularity.
func (c *Classifier) ClassifyOutline(outline geometry.Outline) OutlineShape {
	circularity := outline.Circularity()
	vertices, votes := VoteVertices(outline, c.params.EpsilonFractions)
	aspect := outline.BoundingRect().AspectRatio()

	return OutlineShape{
		Type:        c.params.Shape.Label(vertices, aspect, circularity),
		Vertices:    vertices,
		Circularity: circularity,
		Votes:       votes,
	}
}

// VoteVertices approximates the outline as a polygon once per tolerance
// (each a fraction of the perimeter) and returns the vertex count produced
// most often. Ties go to the smaller count.
func VoteVertices(outline geometry.Outline, fractions []float64) (int, map[int]int) {
	votes := make(map[int]int, len(fractions))
	if len(outline) == 0 {
		return 0, votes
	}

	pv := gocv.NewPointVectorFromPoints(outline.ImagePoints())
	defer pv.Close()

	perimeter := outline.Perimeter()
	for _, frac := range fractions {
		approx := gocv.ApproxPolyDP(pv, frac*perimeter, true)
		votes[approx.Size()]++
		approx.Close()
	}

	best, bestVotes := 0, -1
	for v, n := range votes {
		if n > bestVotes || (n == bestVotes && v < best) {
			best, bestVotes = v, n
		}
	}
	return best, votes
}
