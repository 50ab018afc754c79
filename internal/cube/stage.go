package cube

// Stage is a CFOP solving milestone. Stages are ordered, so they can be
// compared with < and >.
type Stage int

const (
	// StageNone means not even the cross is solved.
	StageNone Stage = iota

	// StageCross means the four white edges are in place.
	StageCross

	// StageF2L means the white layer and the middle layer are solved.
	StageF2L

	// StageOLL means F2L is solved and the last layer face is one color.
	StageOLL

	// StageSolved means the cube is completely solved.
	StageSolved
)

// String returns a short identifier for the stage.
func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageCross:
		return "cross"
	case StageF2L:
		return "f2l"
	case StageOLL:
		return "oll"
	case StageSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageNone:
		return "Unsolved"
	case StageCross:
		return "Cross"
	case StageF2L:
		return "First Two Layers"
	case StageOLL:
		return "Last Layer Oriented"
	case StageSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// ParseStage maps a stage identifier back to its Stage.
func ParseStage(s string) (Stage, bool) {
	for st := StageNone; st <= StageSolved; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return StageNone, false
}

// Stage detects how far the cube is solved. Detection is relative to the
// centers, so it works in any orientation: the cross is built around the
// white center and the last layer is the face opposite it.
func (c *Cube) Stage() Stage {
	if c.IsSolved() {
		return StageSolved
	}

	var cross vec
	for _, f := range Faces {
		if c.Color(f, 4) == White {
			cross = faceFrames[f].normal
		}
	}

	if !c.layerInPlace(func(pos vec) bool { return pos.nonZero() == 2 && pos.dot(cross) == 1 }) {
		return StageNone
	}
	if !c.layerInPlace(func(pos vec) bool { return pos.dot(cross) >= 0 }) {
		return StageCross
	}

	last := cross.scale(-1)
	for s := 0; s < 54; s++ {
		if slotDirection(s) == last && !c.inPlace(s) {
			return StageF2L
		}
	}
	return StageOLL
}

// inPlace reports whether slot s shows the color of its face's center.
func (c *Cube) inPlace(s int) bool {
	face := Face(s / 9)
	return c.Color(face, s%9) == c.Color(face, 4)
}

// layerInPlace checks every slot on the pieces selected by include.
func (c *Cube) layerInPlace(include func(pos vec) bool) bool {
	for s := 0; s < 54; s++ {
		if include(slotPosition(s)) && !c.inPlace(s) {
			return false
		}
	}
	return true
}
