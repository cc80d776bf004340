// Package toolutils holds small helpers shared by the config loader and
// the CLI.
package toolutils

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ReadYaml decodes file into dest in strict mode, exiting the process on
// failure (there is no sensible way to run with a half-read config).
func ReadYaml(dest any, file string) {
	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open configuration file: %+v\n", err)
		os.Exit(3)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f, yaml.Strict())
	if err = dec.Decode(dest); err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse configuration file: %+v\n", err)
		os.Exit(3)
	}
}
