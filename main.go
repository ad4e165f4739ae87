package main

import "github.com/eskelund/doselog/cmd"

func main() {
	cmd.Execute()
}
