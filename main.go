package main

import "github.com/alexiusacademia/acibeam/cmd"

func main() {
	cmd.Execute()
}
