package voronoi2d

import "math"

var nan32 = float32(math.NaN())

func isNaN32(f float32) bool {
	return f != f
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

func atan232(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
