package md

import "math"

// Vec3 is a point or displacement in nm.
type Vec3 [3]float64

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v[0] * f, v[1] * f, v[2] * f}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Box holds the three periodic box vectors. Boxes are axis-aligned and
// right-handed: the axis lengths sit on the diagonal.
type Box [3]Vec3

// NewBox builds an axis-aligned box from its three edge lengths in nm.
func NewBox(lx, ly, lz float64) Box {
	return Box{
		{lx, 0, 0},
		{0, ly, 0},
		{0, 0, lz},
	}
}

// NewCubicBox builds an axis-aligned cube with edge length l.
func NewCubicBox(l float64) Box {
	return NewBox(l, l, l)
}

// Volume returns the box volume in nm^3.
func (b Box) Volume() float64 {
	return b[0][0] * b[1][1] * b[2][2]
}

// Lengths returns the three axis lengths.
func (b Box) Lengths() Vec3 {
	return Vec3{b[0][0], b[1][1], b[2][2]}
}

// Scaled returns a copy of the box with each vector scaled by the
// per-axis factor.
func (b Box) Scaled(sx, sy, sz float64) Box {
	return Box{b[0].Scale(sx), b[1].Scale(sy), b[2].Scale(sz)}
}

// IsValid reports whether the box has finite vectors and positive volume.
func (b Box) IsValid() bool {
	for _, v := range b {
		if !v.IsFinite() {
			return false
		}
	}
	return b.Volume() > 0
}
