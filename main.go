package main

import "github.com/oceanfv/gofv/cmd"

func main() {
	cmd.Execute()
}
