// Command ttygrid prints a grid of random strings, or a grid document, sized
// to the current terminal. Resize the terminal and run it again to watch
// columns appear and disappear.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
