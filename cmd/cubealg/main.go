// cubealg - terminal trainer for Rubik's cube algorithms.
package main

import (
	"github.com/SeamusWaldron/cubealg/internal/cli"
)

func main() {
	cli.Execute()
}
