package main

import "github.com/synaptecltd/transix/cmd/transix/cmd"

func main() {
	cmd.Execute()
}
