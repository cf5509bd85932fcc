package main

import "github.com/kamal-hamza/usedassets/cmd"

func main() {
	cmd.Execute()
}
