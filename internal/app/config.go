package app

import (
	"fmt"

	"github.com/saradorri/flipside/internal/config"
)

func (a *application) setupConfig(path string) error {
	// Get environment (default to development)
	env := config.GetEnvironment()

	c, err := config.Load(path, env)
	if err != nil {
		return err
	}
	a.config = c

	fmt.Println("[x] Config loaded successfully")
	return nil
}
