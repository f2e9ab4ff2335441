package main

import (
	"github.com/cloudnetsim/cloudnetsim/cmd"
)

func main() {
	cmd.Execute()
}
