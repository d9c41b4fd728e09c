package main

import "github.com/resumesmith/resumesmith/cmd"

func main() {
	cmd.Execute()
}
