package main

import (
	"fmt"
	"os"
)

// @title TurkishStudent API
// @version 1.0
// @description API for Turkish vocabulary, grammar and AI-generated learning content
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
