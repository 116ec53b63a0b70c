//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Prints the report of a transform document.
func (Run) Inspect(file string) error {
	fmt.Println("Inspect", file)
	if _, err := executeCmd("go", withArgs("run", "-ldflags", ldflags(), ".", "inspect", file), withStream()); err != nil {
		return err
	}
	return nil
}

// Prints the report of a transform document on every change.
func (Run) Watch(file string) error {
	mg.Deps(Vet)
	if _, err := executeCmd("go", withArgs("run", ".", "inspect", "--watch", file), withStream()); err != nil {
		return err
	}
	return nil
}
