// Package cubealg parses, inverts and reorients Rubik's cube algorithms
// written in standard move notation.
//
// # Notation
//
// A move is a face letter with an optional modifier:
//
//   - R L U D F B: outer face turns
//   - r l u d f b: wide turns (face plus middle layer)
//   - M E S: slice turns
//   - x y z: whole cube rotations
//
// A plain letter is a clockwise quarter turn, ' is counter-clockwise and
// 2 is a half turn. Half turns have no direction, so U2' is read as U2.
// Parentheses group triggers for display and carry no meaning.
//
// # Quick Start
//
//	alg := cubealg.Parse("(R U R' U') (R' F R F')")
//	fmt.Println(alg)           // R U R' U' R' F R F'
//	fmt.Println(alg.Inverse()) // F R' F' R U R U' R'
//
//	// Show a front-right F2L insert in the back-right slot
//	fmt.Println(cubealg.TransformByY("R U' R'", cubealg.Y)) // B U' B'
//
// # Permissive Parsing
//
// Parse, Invert and TransformByY never fail. Text that is not valid
// notation survives as an opaque token and is passed through unchanged.
// Use ParseStrict when malformed input should be rejected.
//
// All functions are pure and safe for concurrent use.
package cubealg
