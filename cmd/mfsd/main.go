package main

import "github.com/LeJamon/goMFS/internal/cli"

func main() {
	cli.Execute()
}
