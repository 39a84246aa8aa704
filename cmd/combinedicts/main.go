package main

import (
	"combinedicts/cmd/combinedicts/commands"
	"combinedicts/lib/telemetry"
	"context"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "combinedicts")
	commands.ExecuteContext(context.Background())
}
