package panel

import "fmt"

// EligibilityProbeError reports a failure while polling a panel
type EligibilityProbeError struct {
	PanelID string
	Err     error
}

func (e *EligibilityProbeError) Error() string {
	return fmt.Sprintf("poll failed for panel %q: %v", e.PanelID, e.Err)
}

func (e *EligibilityProbeError) Unwrap() error {
	return e.Err
}

// Probe evaluates the descriptor's predicate against ctx.
// A nil predicate always applies. Errors and panics raised by the
// predicate are returned as *EligibilityProbeError with applies=false.
func Probe(d Descriptor, ctx Context) (applies bool, err error) {
	if d.Poll == nil {
		return true, nil
	}

	defer func() {
		if r := recover(); r != nil {
			applies = false
			err = &EligibilityProbeError{PanelID: d.ID, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	ok, pollErr := d.Poll.Applies(ctx)
	if pollErr != nil {
		return false, &EligibilityProbeError{PanelID: d.ID, Err: pollErr}
	}
	return ok, nil
}
