package geometry

import "sort"

// ConvexHull computes the convex hull of a set of points using Graham scan.
// Returns the points forming the convex hull in counter-clockwise order.
func ConvexHull(points []PointInt) []PointInt {
	if len(points) < 3 {
		return points
	}

	// Make a copy to avoid modifying the input
	pts := make([]PointInt, len(points))
	copy(pts, points)

	// Find the point with lowest y (and leftmost if tied)
	lowest := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[lowest].Y ||
			(pts[i].Y == pts[lowest].Y && pts[i].X < pts[lowest].X) {
			lowest = i
		}
	}

	// Swap to front
	pts[0], pts[lowest] = pts[lowest], pts[0]
	pivot := pts[0]

	// Sort by polar angle with respect to pivot; nearer first when collinear
	rest := pts[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		cross := crossProduct(pivot, rest[i], rest[j])
		if cross != 0 {
			return cross > 0
		}
		return distSq(pivot, rest[i]) < distSq(pivot, rest[j])
	})

	// Build hull
	hull := []PointInt{pivot}
	for _, p := range rest {
		for len(hull) > 1 && crossProduct(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b PointInt) int64 {
	return int64(a.X-o.X)*int64(b.Y-o.Y) - int64(a.Y-o.Y)*int64(b.X-o.X)
}

// distSq computes the squared distance between two points.
func distSq(a, b PointInt) int64 {
	dx := int64(b.X - a.X)
	dy := int64(b.Y - a.Y)
	return dx*dx + dy*dy
}
