package main

import (
	"os"

	"github.com/quillnotes/quill/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
