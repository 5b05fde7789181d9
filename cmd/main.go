package main

import "github.com/solnyshko2009/qui-task/internal/cli"

func main() {
	cli.Execute()
}
