//go:build !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "sash-demo: native windows require Windows")
	os.Exit(1)
}
