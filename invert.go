package cubealg

// Inverse returns the algorithm that undoes a: the moves in reverse order,
// each one inverted.
func (a Algorithm) Inverse() Algorithm {
	out := make(Algorithm, len(a))
	for i, t := range a {
		out[len(a)-1-i] = t.Inverse()
	}
	return out
}

// Invert parses input and returns its inverse in canonical notation.
//
//	Invert("R U R'")         // "R U' R'"
//	Invert("F (R U R' U') F'") // "F U R U' R' F'"
func Invert(input string) string {
	return Parse(input).Inverse().String()
}
