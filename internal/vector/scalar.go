package vector

// Float64 is the real line with float64 precision. It is self-dual: its
// tangent and cotangent spaces are Float64 itself.
type Float64 float64

// Add returns x + y.
func (x Float64) Add(y Float64) Float64 { return x + y }

// Sub returns x - y.
func (x Float64) Sub(y Float64) Float64 { return x - y }

// Scale returns s * x.
func (x Float64) Scale(s float64) Float64 { return Float64(s) * x }

// Dot returns x * y.
func (x Float64) Dot(y Float64) float64 { return float64(x * y) }

// Moved returns x moved along the direction d, which is x + d.
func (x Float64) Moved(d Float64) Float64 { return x + d }

// TangentVector converts a cotangent into a tangent. Both spaces coincide.
func (x Float64) TangentVector(c Float64) Float64 { return c }

// Float32 is the real line with float32 precision.
type Float32 float32

// Add returns x + y.
func (x Float32) Add(y Float32) Float32 { return x + y }

// Sub returns x - y.
func (x Float32) Sub(y Float32) Float32 { return x - y }

// Scale returns s * x, computed in float32.
func (x Float32) Scale(s float64) Float32 { return Float32(s) * x }

// Dot returns x * y widened to float64.
func (x Float32) Dot(y Float32) float64 { return float64(x) * float64(y) }

// Moved returns x + d.
func (x Float32) Moved(d Float32) Float32 { return x + d }

// TangentVector returns c unchanged.
func (x Float32) TangentVector(c Float32) Float32 { return c }
