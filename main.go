package main

import (
	"os"

	"github.com/Asiantown/GeoEvents/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
