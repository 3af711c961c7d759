package main

import "github.com/smartdiet-sl/smartdiet/backend/internal/cli"

func main() {
	cli.Execute()
}
