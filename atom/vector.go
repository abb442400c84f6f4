package atom

import "math"

// Vector is a cartesian coordinate.
type Vector [3]float64

func VectorOf(x, y, z float64) Vector {
	return Vector{x, y, z}
}

func VectorFrom32(v [3]float32) Vector {
	return Vector{float64(v[0]), float64(v[1]), float64(v[2])}
}

func (v Vector) X() float64 { return v[0] }
func (v Vector) Y() float64 { return v[1] }
func (v Vector) Z() float64 { return v[2] }

func (v Vector) Add(o Vector) Vector {
	return Vector{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vector) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Norm()
}
