package model

import "math"

// Point is a map position. Queens and sites sit on integer coordinates but
// centroids and approach targets do not.
type Point struct {
	X float64
	Y float64
}

// Pt builds a Point from integer map coordinates.
func Pt(x, y int) Point { return Point{X: float64(x), Y: float64(y)} }

// Distance is the straight-line distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Sub returns a − b.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Scale returns p·k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Unit returns p normalised to length one, or the zero vector when p has no
// length and therefore no direction.
func (p Point) Unit() Point {
	l := math.Hypot(p.X, p.Y)
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Ints truncates toward zero, which is how the referee reads coordinates.
func (p Point) Ints() (int, int) { return int(p.X), int(p.Y) }

// TravelTime is the number of turns needed to cover dist at speed, never
// negative: a traveller already inside the target needs no time.
func TravelTime(dist, speed float64) float64 {
	if dist <= 0 {
		return 0
	}
	return dist / speed
}
