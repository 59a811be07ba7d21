package main

import "github.com/Manu343726/spvgen/cmd"

func main() {
	cmd.Execute()
}
