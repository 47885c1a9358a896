package main

import "simplecrm/internal/app"

// @title           SimpleCRM API
// @version         1.0
// @description     Multi-tenant lead management CRM.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
