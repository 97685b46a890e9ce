package main

import "eventhub/cmd/server/cmd"

// @title Eventhub API
// @version 1.0
// @description Event management API: user accounts, events and attendance.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Raw token or "Bearer <token>".
func main() {
	cmd.Execute()
}
