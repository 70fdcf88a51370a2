package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// config errors
const (
	ErrInvalidPort     = Error("invalid port")
	ErrInvalidDuration = Error("invalid duration")
	ErrInvalidFormat   = Error("invalid log format")
)

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
	ErrUnhealthy    = Error("service reported unhealthy")
)
