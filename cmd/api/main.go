package main

// @title To-Do Gateway APIs
// @version 1.0
// @description CRUD gateway translating HTTP requests onto a DynamoDB table.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	protocol "todo-gateway/protocal"

	_ "todo-gateway/docs"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
