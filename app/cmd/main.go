package main

import (
	"os"

	"github.com/ribgsilva/notes-app/app/cmd/schema"
)

func main() {
	if len(os.Args) < 2 {
		listTools()
		return
	}

	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	default:
		listTools()
	}
}

func listTools() {
	println("Admin Tools")
	println("\tschema\t\t\t- Manages the database schema")
}
