package main

import (
	"auto-thread-bot/bot"
	"auto-thread-bot/handlers"
)

func main() {
	bot.Run(handlers.Register)
}
