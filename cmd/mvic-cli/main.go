package main

import (
	"context"

	"github.com/citizenlabsgr/elections-api/cmd/mvic-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
