package main

import (
	"os"

	"github.com/scrydb/scrydb/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
