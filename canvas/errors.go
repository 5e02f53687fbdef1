package canvas

import "errors"

// Errors returned by Canvas operations. They are wrapped with the box id;
// test for them with errors.Is. A failing operation leaves the canvas
// unchanged.
var (
	ErrDuplicateID  = errors.New("box id already exists")
	ErrNotFound     = errors.New("no such box")
	ErrWrongBoxType = errors.New("wrong box type")
	ErrInvalidStyle = errors.New("invalid text style")
)
