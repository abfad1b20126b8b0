package main

import (
	"github.com/vendstack/coffeemaker/pkg/cli"
)

func main() {
	cli.Execute()
}
