package main

import (
	"os"

	"github.com/signalops/signalrest/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
