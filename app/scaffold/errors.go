package scaffold

import "errors"

var (
	// ErrInvalidDirectory means the directory hint or the picked path is not
	// an existing directory.
	ErrInvalidDirectory = errors.New("not a valid directory")
	// ErrCancelled means the user dismissed a prompt without answering.
	ErrCancelled = errors.New("cancelled by user")
	// ErrDirectoryCreate means a parent directory could not be created.
	ErrDirectoryCreate = errors.New("could not create directory")
	// ErrAlreadyExists means the target file is already present. It is never
	// overwritten.
	ErrAlreadyExists = errors.New("file already exists")
	// ErrWrite means the file could not be written.
	ErrWrite = errors.New("could not write file")
)

// Status classifies the outcome of one file write.
type Status int

const (
	StatusCreated Status = iota
	StatusExists
	StatusFailed
	// StatusPlanned marks files of a dry run.
	StatusPlanned
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusExists:
		return "exists"
	case StatusFailed:
		return "failed"
	case StatusPlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// StatusOf maps a Writer.Write error to a Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusCreated
	case errors.Is(err, ErrAlreadyExists):
		return StatusExists
	default:
		return StatusFailed
	}
}
