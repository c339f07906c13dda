package main

import "github.com/simonhull/id3chapters/cmd/id3chapters/cmd"

func main() {
	cmd.Execute()
}
