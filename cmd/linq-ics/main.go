package main

import "github.com/pfrederiksen/linq-ics/internal/cli"

func main() {
	cli.Execute()
}
