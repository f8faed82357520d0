// Command site serves, builds and previews the Cake Elizabeth website.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
