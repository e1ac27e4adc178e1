package main

import (
	"github.com/collectionlog/backend/cmd/app"
)

func main() {
	app.Run()
}
