package main

import "github.com/yaptide/materials/cli"

func main() {
	cli.Launch()
}
