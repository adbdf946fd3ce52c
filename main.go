package main

import (
	"gsheet_bridge/cmd"
	"gsheet_bridge/internal/app"
)

func main() {
	app.SetupEnvironment()
	cmd.Execute()
}
