package main

import "urf-recipe/internal/cli"

func main() {
	cli.Execute()
}
