package main

import (
	"context"
	"os"

	"github.com/OliveiraNt/pubsub-topic-creator/cmd"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/utils"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()

	os.Exit(cmd.Run(context.Background(), os.Args[1:]))
}
