package roman

import "fmt"

// ParseError reports a character that is not one of IVXLCDM.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid characters: %s", e.Token)
}
