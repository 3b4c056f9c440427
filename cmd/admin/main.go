package main

import (
	"hero_seguros/internal/adapter/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute()
}
