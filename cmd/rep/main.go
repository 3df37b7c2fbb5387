package main

import "github.com/mvp-joe/rep/internal/cli"

func main() {
	cli.Execute()
}
