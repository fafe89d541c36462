package registry

// notDirectoryError is returned when a listing root exists but is a file.
type notDirectoryError struct{ path string }

func (e notDirectoryError) Error() string { return "not a directory: " + e.path }

// IsNotDirectory reports whether err indicates a root that is not a directory.
func IsNotDirectory(err error) bool {
	_, ok := err.(notDirectoryError)
	return ok
}

// presetError explains why a preset document was skipped.
type presetError struct{ msg string }

func (e presetError) Error() string { return e.msg }

var errMissingPrompt = presetError{msg: `missing "prompt" field`}
