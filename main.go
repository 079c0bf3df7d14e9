package main

import "pantrypal/cmd"

func main() {
	cmd.Execute()
}
