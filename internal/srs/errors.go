package srs

import "fmt"

// InvalidQualityError indicates a quality or UI rating outside the grading
// scale. The offending call mutates nothing.
type InvalidQualityError struct {
	Quality int
}

func (e *InvalidQualityError) Error() string {
	return fmt.Sprintf("review quality %d outside 0-5", e.Quality)
}
