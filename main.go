package main

import "github.com/rcdesign/gorcc/cmd"

func main() {
	cmd.Execute()
}
