package main

import "github.com/hiddenvector/mkw-data-api/cmd"

func main() {
	cmd.Execute()
}
