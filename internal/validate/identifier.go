package validate

import (
	"fmt"
	"regexp"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Identifier returns an error if the given name is not a safe SQL
// identifier. Identifiers are interpolated directly into statements, so
// anything outside the allow-list pattern is rejected before it reaches
// the engine.
func Identifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier must not be empty")
	}
	if !identifierRe.MatchString(name) {
		return fmt.Errorf("invalid identifier %q, must match %s", name, identifierRe.String())
	}
	return nil
}
