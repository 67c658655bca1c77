package main

import (
	"fmt"
	"os"

	"github.com/PauloHFS/biblio/internal/cmd"
)

func main() {
	if len(os.Args) < 2 {
		cmd.RunAuthorsServer()
		return
	}

	switch os.Args[1] {
	case "authors":
		cmd.RunAuthorsServer()
	case "books":
		cmd.RunBooksServer()
	case "migrate":
		cmd.RunMigrate()
	case "seed":
		cmd.RunSeed()
	case "help":
		showHelp()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Biblio - Single Binary Console")
	fmt.Println("Usage: ./biblio [command]")
	fmt.Println("\nAvailable commands:")
	fmt.Println("  authors   Start the authors directory API (default)")
	fmt.Println("  books     Start the books catalog API")
	fmt.Println("  migrate   Run database migrations")
	fmt.Println("  seed      Run migrations and seed the sample authors")
	fmt.Println("  help      Show this help message")
}
