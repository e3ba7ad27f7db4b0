package matrix

// Scalar is the numeric policy of the engine: IEEE single or double
// precision floating point. Every generic type in this module and its
// siblings (linalg, gemm, bilinear, algotables) is parameterized over
// Scalar so the same recursion driver and coefficient tables serve both
// precisions without duplicated code.
type Scalar interface {
	~float32 | ~float64
}
