// Stovetop is a hands-free cooking guide for the terminal.
//
// Usage:
//
//	stovetop cook recipe.txt [--optimize 2,3] [--listen]
//	stovetop parse|optimize|scale [file]
//	stovetop review --notes "too salty"
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
