package errors

// Kind classifies a failure so callers can tell bad data from degenerate geometry
// from wrong usage order without matching on error strings.
type Kind int

const (
	// KindUnknown is any error outside the taxonomy below.
	KindUnknown Kind = iota
	// KindInvalidInput covers empty sequences and x/y length mismatches.
	KindInvalidInput
	// KindDegenerateFit means no unique least-squares line exists.
	KindDegenerateFit
	// KindZeroSlope means inverse prediction on a horizontal line.
	KindZeroSlope
	// KindNotFitted means a model value that Fit never produced.
	KindNotFitted
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindDegenerateFit:
		return "DegenerateFit"
	case KindZeroSlope:
		return "ZeroSlope"
	case KindNotFitted:
		return "ModelNotFitted"
	default:
		return "Unknown"
	}
}

// KindOf reports the kind of err. A nil error is KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case Is(err, ErrInvalidInput):
		return KindInvalidInput
	case Is(err, ErrDegenerateFit):
		return KindDegenerateFit
	case Is(err, ErrZeroSlope):
		return KindZeroSlope
	case Is(err, ErrNotFitted):
		return KindNotFitted
	default:
		return KindUnknown
	}
}
