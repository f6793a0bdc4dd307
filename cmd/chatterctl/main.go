package main

import "chatter-metrics-service/internal/cli"

func main() {
	cli.Execute()
}
