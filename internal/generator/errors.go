package generator

import "errors"

// Generation failures. Each is returned wrapped with the details of the
// failing request; test with errors.Is.
var (
	ErrNilRequest        = errors.New("no mission request")
	ErrNoPlayerGroup     = errors.New("no player group")
	ErrNoNavigableRegion = errors.New("no navigable region")
	ErrUnknownScript     = errors.New("unknown mission script")
)

func reason(err error) string {
	switch {
	case errors.Is(err, ErrNilRequest):
		return "nil_request"
	case errors.Is(err, ErrNoPlayerGroup):
		return "no_player_group"
	case errors.Is(err, ErrNoNavigableRegion):
		return "no_navigable_region"
	case errors.Is(err, ErrUnknownScript):
		return "unknown_script"
	}
	return "other"
}
