package main

import (
	"log"
	"os"

	"github.com/ian-shakespeare/monlex/internal/repl"
)

func main() {
	if err := repl.Start(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err.Error())
	}
}
