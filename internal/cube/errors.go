package cube

import "errors"

// Sentinel errors for the cube package.
var (
	ErrUnsupportedMove = errors.New("cube: unsupported move")
	ErrInvalidMask     = errors.New("cube: invalid stickering mask")
	ErrNoFrame         = errors.New("cube: no such frame")
)
