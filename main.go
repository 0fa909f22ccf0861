package main

import "github.com/staffdir/apiserver/cmd"

func main() {
	cmd.Execute()
}
