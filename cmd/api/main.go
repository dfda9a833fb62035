package main

import (
	"log"

	"propfolio/cmd"
)

func main() {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	err = handler.StartApi(8080)
	if err != nil {
		log.Fatal(err)
	}
}
