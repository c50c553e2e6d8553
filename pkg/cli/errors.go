package cli

import "errors"

var (
	// ErrMissingInput is returned when no image path is given.
	ErrMissingInput = errors.New("please provide an image path")
	// ErrDecode wraps failures to read or decode the input image.
	ErrDecode = errors.New("decode failed")
	// ErrEncode wraps failures to encode or write the output image.
	ErrEncode = errors.New("encode failed")
)
