package fabs

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
//	Abs(-0) = -0
func Abs(x float32) float32 {
	if x >= 0 {
		return x
	}
	return -x
}
