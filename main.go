package main

import "github.com/tomfrankkirk/tourmapper/cmd"

func main() {
	cmd.Execute()
}
