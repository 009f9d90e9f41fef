// Standalone upload relay: accepts image uploads and serves them back
// from local disk, independent of the catalog backend.
package main

import (
	"mime"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/top5deutschland/top5_backend/config"
	"github.com/top5deutschland/top5_backend/controllers"
	"github.com/top5deutschland/top5_backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, relying on process environment")
	}

	config.InitLogger()

	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	if err := utils.InitializeStorage(); err != nil {
		logrus.WithError(err).Fatal("failed to create upload directories")
	}

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.BodyLimit("11M"))

	uploadController := controllers.NewUploadController()
	e.GET("/api/health", uploadController.Health)
	e.POST("/api/upload", uploadController.UploadSingle)
	e.POST("/api/upload-multiple", uploadController.UploadMultiple)
	e.Static("/uploads", "uploads")

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
