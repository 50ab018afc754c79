package cube

// vec is an integer 3D vector. The cube is centered on the origin with
// +x to the right, +y up and +z towards the viewer (front).
type vec [3]int

func (a vec) add(b vec) vec   { return vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a vec) sub(b vec) vec   { return vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a vec) scale(k int) vec { return vec{a[0] * k, a[1] * k, a[2] * k} }
func (a vec) dot(b vec) int   { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a vec) cross(b vec) vec {
	return vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// rotateCW turns v a quarter turn clockwise as seen looking at the cube
// from the tip of the unit axis a.
func (a vec) rotateCW(v vec) vec {
	return a.scale(a.dot(v)).sub(a.cross(v))
}

// nonZero counts the non-zero components: 1 for centers, 2 for edges,
// 3 for corners.
func (a vec) nonZero() int {
	n := 0
	for _, x := range a {
		if x != 0 {
			n++
		}
	}
	return n
}

var (
	axisX = vec{1, 0, 0}
	axisY = vec{0, 1, 0}
	axisZ = vec{0, 0, 1}
)

// frame places a face in space: its outward normal and the directions of
// increasing column and row in the net.
type frame struct {
	normal, right, down vec
}

var faceFrames = [6]frame{
	U: {normal: axisY, right: axisX, down: axisZ},
	D: {normal: axisY.scale(-1), right: axisX, down: axisZ.scale(-1)},
	F: {normal: axisZ, right: axisX, down: axisY.scale(-1)},
	B: {normal: axisZ.scale(-1), right: axisX.scale(-1), down: axisY.scale(-1)},
	R: {normal: axisX, right: axisZ.scale(-1), down: axisY.scale(-1)},
	L: {normal: axisX.scale(-1), right: axisZ, down: axisY.scale(-1)},
}

// slotAt returns the slot with the given position and normal.
func slotAt(pos, normal vec) int {
	for _, f := range Faces {
		fr := faceFrames[f]
		if fr.normal != normal {
			continue
		}
		off := pos.sub(normal)
		c := off.dot(fr.right) + 1
		r := off.dot(fr.down) + 1
		return slotIndex(f, r*3+c)
	}
	panic("cube: no slot for normal")
}

// layerTurn is a clockwise quarter turn of the layers at the given depths
// along axis. Depth 1 is the outer layer the axis points at.
type layerTurn struct {
	axis   vec
	depths []int
}

func (t layerTurn) turns(pos vec) bool {
	d := t.axis.dot(pos)
	for _, want := range t.depths {
		if d == want {
			return true
		}
	}
	return false
}

// Every move letter as a layer turn. Slices follow the face they share an
// axis with (M like L, E like D, S like F); rotations follow R, U and F.
var layerTurns = map[byte]layerTurn{
	'R': {axisX, []int{1}},
	'L': {axisX.scale(-1), []int{1}},
	'U': {axisY, []int{1}},
	'D': {axisY.scale(-1), []int{1}},
	'F': {axisZ, []int{1}},
	'B': {axisZ.scale(-1), []int{1}},

	'r': {axisX, []int{0, 1}},
	'l': {axisX.scale(-1), []int{0, 1}},
	'u': {axisY, []int{0, 1}},
	'd': {axisY.scale(-1), []int{0, 1}},
	'f': {axisZ, []int{0, 1}},
	'b': {axisZ.scale(-1), []int{0, 1}},

	'M': {axisX.scale(-1), []int{0}},
	'E': {axisY.scale(-1), []int{0}},
	'S': {axisZ, []int{0}},

	'x': {axisX, []int{-1, 0, 1}},
	'y': {axisY, []int{-1, 0, 1}},
	'z': {axisZ, []int{-1, 0, 1}},
}

// permutation maps each slot to the slot its sticker moves to.
type permutation [54]uint8

// quarterTurns holds the permutation of one clockwise quarter turn for
// every move letter.
var quarterTurns = buildQuarterTurns()

func buildQuarterTurns() map[byte]permutation {
	out := make(map[byte]permutation, len(layerTurns))
	for letter, lt := range layerTurns {
		var p permutation
		for s := 0; s < 54; s++ {
			pos, n := slotPosition(s), slotDirection(s)
			if lt.turns(pos) {
				pos, n = lt.axis.rotateCW(pos), lt.axis.rotateCW(n)
			}
			p[s] = uint8(slotAt(pos, n))
		}
		out[letter] = p
	}
	return out
}

// slotPosition returns the position of the piece holding slot s.
func slotPosition(s int) vec {
	fr := faceFrames[s/9]
	i := s % 9
	return fr.normal.add(fr.right.scale(i%3 - 1)).add(fr.down.scale(i/3 - 1))
}

// slotDirection returns the outward normal of slot s.
func slotDirection(s int) vec {
	return faceFrames[s/9].normal
}
