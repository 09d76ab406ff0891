package main

import (
	"log"
	"os"

	"github.com/Kenisaa/EncuestasConQR/src/database"
	"github.com/Kenisaa/EncuestasConQR/src/jobs"
	"github.com/Kenisaa/EncuestasConQR/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	// Conectar con MongoDB (también carga el .env)
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis es opcional: sin él no hay cache ni worker
	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	// Los PNG de códigos QR se sirven como archivos estáticos
	app.Static("/public", "./public")

	routes.InitRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8888"
	}

	log.Println("Server is running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
