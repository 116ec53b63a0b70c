//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the affine binary into bin/.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-ldflags", ldflags(), "-o", "bin/affine", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the unit tests of every package.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs go vet on every package.
func Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Runs the math benchmarks.
func Bench() error {
	_, err := executeCmd("go", withArgs("test", "-run", "^$", "-bench", "."), withDir("engine/math"), withStream())
	return err
}
