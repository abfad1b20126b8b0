package main

import (
	"log"

	"github.com/vendstack/coffeemaker/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
