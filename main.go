package main

import "github.com/armorup/famtree/cmd"

func main() {
	cmd.Execute()
}
