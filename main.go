package main

import "datasure/cmd"

func main() {
	cmd.Execute()
}
