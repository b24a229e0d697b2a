package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/AlexYaroshuk/chat-CBD2/internal/configuration"
	"github.com/AlexYaroshuk/chat-CBD2/internal/controllers"
	err "github.com/AlexYaroshuk/chat-CBD2/internal/errors"
	"github.com/AlexYaroshuk/chat-CBD2/internal/services"
)

func main() {
	defer func() {
		err.LogAndExit(recover())
	}()

	_ = godotenv.Load()

	appConfig, configErr := configuration.Load()
	if configErr != nil {
		panic(configErr)
	}

	svc, wireErr := services.Wire(context.Background(), appConfig)
	if wireErr != nil {
		panic(wireErr)
	}

	e := echo.New()
	controllers.WireControllers(e, svc)

	e.Logger.Fatal(e.Start(":" + appConfig.GetPort()))
}
