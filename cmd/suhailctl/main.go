package main

import "github.com/suhailre/suhail/internal/cli"

func main() {
	cli.Execute()
}
