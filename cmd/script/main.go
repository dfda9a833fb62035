package main

import (
	"log"

	"propfolio/cmd"
)

func main() {
	if err := cmd.RunDemoAnalysis(); err != nil {
		log.Fatal(err)
	}
}
