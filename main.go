package main

import (
	"os"

	"github.com/thenoetrevino/sazon/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
