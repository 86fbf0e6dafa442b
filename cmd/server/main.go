package main

import (
	"os"

	"portfolio/backend/internal/app"
)

func main() {
	os.Exit(app.Run())
}
