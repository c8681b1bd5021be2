package protocal

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"todo-gateway/configs"
	httpAdapter "todo-gateway/internal/adapters/input/http"
	dynamoAdapter "todo-gateway/internal/adapters/output/dynamo"
	"todo-gateway/internal/application"
	"todo-gateway/pkg/database_driver/dynamo"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	dbClient, err := dynamo.ConnectToDynamoDB(
		context.Background(),
		configs.GetViper().Dynamo.Region,
		configs.GetViper().Dynamo.Endpoint,
	)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapter (repository)
	dynamoRepo := dynamoAdapter.NewTodoRepository(dbClient, configs.GetViper().Dynamo.Table)
	// Application service (use case)
	srv := application.NewTodoService(dynamoRepo)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, dynamoRepo)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	magnolia := app.Group("/v1")
	{
		magnolia.Get("/todo", hdl.ListTodos)
		magnolia.Put("/todo", hdl.CreateTodo)
		magnolia.Get("/todo/:id", hdl.GetTodo)
		magnolia.Put("/todo/:id", hdl.UpdateTodo)
		magnolia.Delete("/todo/:id", hdl.DeleteTodo)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
