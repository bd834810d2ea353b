package main

import "github.com/aymanalhattami/deepseek-go-client/cmd"

func main() {
	cmd.Execute()
}
