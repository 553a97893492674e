package main

import "github.com/iburimskiy/purpletab/cmd"

func main() {
	cmd.Execute()
}
