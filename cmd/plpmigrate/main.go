package main

import (
	"github.com/stonebridge-jewelers/plpmigrate/cmd/plpmigrate/cmd"
)

func main() {
	cmd.Execute()
}
