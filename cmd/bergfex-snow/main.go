package main

import "github.com/mfeller/bergfex-snow/internal/cli"

func main() {
	cli.Execute()
}
