package facade

import (
	"fmt"
	"io"
)

// Demo runs the facade demonstration: a successful conversion followed by a
// rejected one, writing the transcript to w. The error path is expected and
// logged rather than returned, matching how client code would treat a bad
// user request.
func Demo(w io.Writer) error {
	conv := NewVideoConverter()

	res, err := conv.Convert("holiday.avi", FormatMP4)
	if err != nil {
		return err
	}
	for _, s := range res.Steps {
		if _, err := fmt.Fprintf(w, "%-14s %s\n", s.Name, s.Detail); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "produced %s\n", res.File); err != nil {
		return err
	}

	if _, err := conv.Convert("holiday.avi", "wmv"); err != nil {
		if _, werr := fmt.Fprintf(w, "rejected: %v\n", err); werr != nil {
			return werr
		}
	}
	return nil
}
