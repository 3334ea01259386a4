package main

import "ghrest/internal/cli"

func main() {
	cli.Execute()
}
