package main

import "github.com/pfrederiksen/tampere-gigs/internal/cli"

func main() {
	cli.Execute()
}
