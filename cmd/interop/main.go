// interop runs the periodic component rendering demo.
package main

import (
	"fmt"
	"os"

	errUtils "github.com/germtb/interop/errors"
)

const version = "0.2.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "interop: %v\n", err)
		for _, hint := range errUtils.Hints(err) {
			fmt.Fprintf(os.Stderr, "  hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
