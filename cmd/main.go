package main

import (
	"os"

	"github.com/agglayer/cascadekit"
	"github.com/agglayer/cascadekit/common"
	"github.com/agglayer/cascadekit/config"
	"github.com/agglayer/cascadekit/log"
	"github.com/urfave/cli/v2"
)

const appName = "cascadekit"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: true,
	}
	componentsFlag = cli.StringSliceFlag{
		Name:     config.FlagComponents,
		Aliases:  []string{"co"},
		Usage:    "List of components to run",
		Required: false,
		Value:    cli.NewStringSlice(common.DISPATCHER, common.CLAIMRECONCILER, common.STATUS),
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: cascadekit_config.toml)",
		Required: false,
	}
	disableDefaultConfigVars = cli.BoolFlag{
		Name:     config.FlagDisableDefaultConfigVars,
		Aliases:  []string{"d"},
		Usage:    "Disable default configuration variables, all of them must be defined on config files",
		Required: false,
	}
	allowDeprecatedFields = cli.BoolFlag{
		Name:     config.FlagAllowDeprecatedFields,
		Usage:    "Allow that config-files contains deprecated fields",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = cascadekit.Version
	flags := []cli.Flag{
		&configFileFlag,
		&saveConfigFlag,
		&disableDefaultConfigVars,
		&allowDeprecatedFields,
	}
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the cascadekit relayer",
			Action:  start,
			Flags:   append(flags, &componentsFlag),
		},
		{
			Name:    "status",
			Aliases: []string{},
			Usage:   "Query the status and pending claims of a running relayer",
			Action:  statusCmd,
			Flags:   []cli.Flag{&rpcURLFlag},
		},
		{
			Name:    "schema",
			Aliases: []string{},
			Usage:   "Print the JSON schema of the configuration file",
			Action:  schemaCmd,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
