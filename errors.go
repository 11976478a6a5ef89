package kayadata

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for query and load failures.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidConvention indicates an unrecognized GDP convention.
	// Historical queries accept only MER and PPP.
	ErrInvalidConvention = constError("invalid GDP convention")

	// ErrYearOutOfRange indicates a projection year outside the span of the
	// top-down value table. Interpolation never extrapolates.
	ErrYearOutOfRange = constError("projection year out of range")

	// ErrBadTable indicates an unrecognized table identifier.
	ErrBadTable = constError("unknown backing table")

	// ErrDataFormat indicates the embedded dataset could not be parsed.
	// This is a build defect: the data files ship inside the binary.
	ErrDataFormat = constError("malformed dataset")

	// ErrSchemaVersion indicates the dataset manifest declares a schema
	// version this library does not support.
	ErrSchemaVersion = constError("unsupported dataset schema version")
)
