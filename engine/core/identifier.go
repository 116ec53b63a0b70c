package core

import (
	"fmt"

	"github.com/google/uuid"
)

// IdentifierAquireNewID returns a fresh random identifier.
func IdentifierAquireNewID() string {
	return uuid.New().String()
}

// IdentifierParse validates id and returns it in canonical form.
func IdentifierParse(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("identifier '%s': %w", id, err)
	}
	return u.String(), nil
}
