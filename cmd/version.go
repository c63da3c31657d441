package main

import (
	"fmt"
	"os"

	"github.com/agglayer/cascadekit"
	"github.com/agglayer/cascadekit/config"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	cascadekit.PrintVersion(os.Stdout)

	return nil
}

func schemaCmd(*cli.Context) error {
	schema, err := config.GenerateJSONSchema()
	if err != nil {
		return fmt.Errorf("error generating config schema: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(schema))
	return err
}
