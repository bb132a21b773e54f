package main

import "sriovhmc/cmd"

func main() {
	cmd.Execute()
}
