package main

import (
	"context"
	"log"
	"net/http"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	logrus "github.com/sirupsen/logrus"

	"songsnap/audio"
	appConfig "songsnap/config"
	"songsnap/gemini"
	"songsnap/handlers"
	"songsnap/recognize"
	appSentry "songsnap/sentry"
	"songsnap/shazam"
	"songsnap/soundcloud"
	"songsnap/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	appConfig.NewConfig()
	setupLogging()
	appSentry.Init()

	if !appConfig.Config.SoundCloud.IsEnabled() {
		logrus.Warn("SOUNDCLOUD_CLIENT_ID not set, catalog search will return no results")
	}

	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func setupLogging() {
	logrus.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component"},
	})
	if level, err := logrus.ParseLevel(appConfig.Config.Options.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
}

func run(ctx context.Context) error {
	timeout := time.Duration(appConfig.Config.Options.RequestTimeoutSeconds) * time.Second

	pipeline := recognize.NewPipeline(
		audio.NewNormalizer(timeout),
		shazam.New(appConfig.Config.Shazam.APIURL, appConfig.Config.Shazam.APIKey, timeout),
		soundcloud.New(appConfig.Config.SoundCloud.APIURL, appConfig.Config.SoundCloud.ClientID, timeout),
	)
	handler := handlers.NewHandler(pipeline, appConfig.Config.Options.MaxUploadMB)

	router := gin.Default()
	router.Use(appSentry.GetSentryGin())

	router.GET("/", handler.Index)
	router.POST("/recognize", handler.Recognize)

	if token := appConfig.Config.Telegram.BotToken; token != "" {
		tgBot, err := telegram.New(token, gemini.GenerateAnswer)
		if err != nil {
			return err
		}
		go tgBot.Start(ctx)
	} else {
		logrus.Warn("BOT_TOKEN not set, bot relay disabled")
	}

	port := appConfig.Config.Options.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on :%s", port)
	return http.ListenAndServe(":"+port, router)
}
