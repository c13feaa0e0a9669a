package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: seeder seed")
	}

	switch os.Args[1] {
	case "seed":
		RunSeed()
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
