package cubealg

import (
	"strings"
	"time"
)

// Definition describes what a move does, for display next to a demo.
type Definition struct {
	Token       Token
	Kind        Kind
	Title       string
	Description string
	Direction   string
	Layer       string
	Angle       string
}

// Base definitions for clockwise quarter turns. Primes and doubles are
// derived from these by Define.
var definitions = map[byte]Definition{
	// Face turns
	'R': {Title: "Right Face Turn", Description: "Turns the right face of the cube clockwise.", Layer: "Right face"},
	'U': {Title: "Up Face Turn", Description: "Turns the upper face of the cube clockwise.", Layer: "Upper face"},
	'F': {Title: "Front Face Turn", Description: "Turns the front face of the cube clockwise.", Layer: "Front face"},
	'L': {Title: "Left Face Turn", Description: "Turns the left face of the cube clockwise.", Layer: "Left face"},
	'D': {Title: "Down Face Turn", Description: "Turns the bottom face of the cube clockwise.", Layer: "Bottom face"},
	'B': {Title: "Back Face Turn", Description: "Turns the back face of the cube clockwise.", Layer: "Back face"},

	// Wide turns
	'r': {Title: "Right Wide Turn", Description: "Turns the right face and the middle layer together clockwise.", Layer: "Right face + middle layer"},
	'u': {Title: "Up Wide Turn", Description: "Turns the upper face and the middle layer together clockwise.", Layer: "Upper face + middle layer"},
	'f': {Title: "Front Wide Turn", Description: "Turns the front face and the middle layer together clockwise.", Layer: "Front face + middle layer"},
	'l': {Title: "Left Wide Turn", Description: "Turns the left face and the middle layer together clockwise.", Layer: "Left face + middle layer"},
	'd': {Title: "Down Wide Turn", Description: "Turns the bottom face and the middle layer together clockwise.", Layer: "Bottom face + middle layer"},
	'b': {Title: "Back Wide Turn", Description: "Turns the back face and the middle layer together clockwise.", Layer: "Back face + middle layer"},

	// Slice turns
	'M': {Title: "Middle Slice Turn", Description: "Turns the middle layer between left and right faces clockwise, following L.", Layer: "Middle slice"},
	'E': {Title: "Equatorial Slice Turn", Description: "Turns the middle layer between up and down faces clockwise, following D.", Layer: "Equatorial slice"},
	'S': {Title: "Standing Slice Turn", Description: "Turns the middle layer between front and back faces clockwise, following F.", Layer: "Standing slice"},

	// Rotations
	'x': {Title: "X Rotation", Description: "Rotates the entire cube clockwise around the X-axis (left-right), following R.", Layer: "Entire cube"},
	'y': {Title: "Y Rotation", Description: "Rotates the entire cube clockwise around the Y-axis (up-down), following U.", Layer: "Entire cube"},
	'z': {Title: "Z Rotation", Description: "Rotates the entire cube clockwise around the Z-axis (front-back), following F.", Layer: "Entire cube"},
}

// Define returns the definition of a move, with the title, description
// and details adjusted for prime and double modifiers. Tokens outside the
// move grammar get a generic definition.
func Define(t Token) Definition {
	face, mod, ok := t.Split()
	base, known := definitions[face]
	if !ok || !known {
		return Definition{
			Token:       t,
			Kind:        KindUnknown,
			Title:       string(t) + " Move",
			Description: "Definition for " + string(t) + " move.",
			Direction:   "Unknown",
			Layer:       "Unknown",
			Angle:       "Unknown",
		}
	}

	def := base
	def.Token = t
	def.Kind = kindOf(face)
	def.Direction = "Clockwise"
	def.Angle = "90°"

	switch mod {
	case ModPrime:
		def.Title = strings.Replace(def.Title, "Turn", "Turn (Prime)", 1)
		def.Title = strings.Replace(def.Title, "Rotation", "Rotation (Prime)", 1)
		def.Description = strings.Replace(def.Description, "clockwise", "counter-clockwise", 1)
		def.Direction = "Counter-clockwise"
	case ModDouble:
		def.Title = strings.Replace(def.Title, "Turn", "Turn (Double)", 1)
		def.Title = strings.Replace(def.Title, "Rotation", "Rotation (Double)", 1)
		def.Description = strings.Replace(def.Description, "clockwise", "180 degrees", 1)
		def.Angle = "180°"
	}
	return def
}

// Variants returns the clockwise, prime and double forms of a move,
// in that order. Malformed tokens have no variants.
func Variants(t Token) []Token {
	face, _, ok := t.Split()
	if !ok {
		return nil
	}
	base := string(face)
	return []Token{Token(base), Token(base + "'"), Token(base + "2")}
}

// MoveGroup is a set of related moves shown together.
type MoveGroup struct {
	Kind     Kind
	Title    string
	Moves    []Token
	Interval time.Duration // Default time per move when animating
}

// MoveGroups returns the four move groups in teaching order.
func MoveGroups() []MoveGroup {
	return []MoveGroup{
		{Kind: KindFace, Title: "Face Turns", Moves: []Token{"R", "U", "F", "L", "D", "B"}, Interval: 3 * time.Second},
		{Kind: KindWide, Title: "Wide Turns", Moves: []Token{"r", "u", "f", "l", "d", "b"}, Interval: 3 * time.Second},
		{Kind: KindSlice, Title: "Slice Turns", Moves: []Token{"M", "E", "S"}, Interval: 3 * time.Second},
		{Kind: KindRotation, Title: "Rotations", Moves: []Token{"x", "y", "z"}, Interval: 3 * time.Second},
	}
}
