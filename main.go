package main

import "docfmt/cmd"

func main() {
	cmd.Execute()
}
