package main

import "movieblend_backend/internal/app"

func main() {
	app.Run()
}
