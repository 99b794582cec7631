package main

import (
	"os"

	"github.com/Rafi-Luffy/ManaQuiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
