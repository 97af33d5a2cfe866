package main

import (
	"context"

	"arbeitszeit/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
