package main

import (
	"slot_backend/internal/app"

	"github.com/sirupsen/logrus"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
