package main

import "github.com/tkessler/liga-stats/internal/cli"

func main() {
	cli.Execute()
}
