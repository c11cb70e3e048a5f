package main

import "github.com/mdekker/ytscribe/internal/adapters/cli"

func main() {
	cli.Execute()
}
