// @title           Portfolio admin API
// @version         1.0
// @description     Admin API for portfolio content, contact messages and files.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

package main

import (
	_ "portfolio_backend/docs"
	"portfolio_backend/internal/app"
)

func main() {
	app.Run()
}
