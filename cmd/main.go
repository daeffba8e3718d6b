package main

import (
	"os"

	"github.com/0xPolygon/lockbridge"
	"github.com/0xPolygon/lockbridge/common"
	"github.com/0xPolygon/lockbridge/config"
	"github.com/0xPolygon/lockbridge/log"
	"github.com/urfave/cli/v2"
)

const appName = "lockbridge"

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
		Value: cli.NewStringSlice(common.HOME_BRIDGE, common.FOREIGN_BRIDGE,
			common.RPC, common.RELAYER_H2F, common.RELAYER_F2H),
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: " + config.SaveConfigFileName + ")",
		Required: false,
	}
	minConfigFlag = cli.BoolFlag{
		Name:     config.FlagMinConfig,
		Usage:    "Only print the vars that must be defined for each deployment",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = lockbridge.Version
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
			Usage:   "Run the lockbridge node",
			Action:  start,
			Flags:   []cli.Flag{&configFileFlag, &componentsFlag, &saveConfigFlag},
		},
		{
			Name:   "config",
			Usage:  "Print the default configuration",
			Action: configCmd,
			Flags:  []cli.Flag{&minConfigFlag},
		},
		{
			Name:   "config-schema",
			Usage:  "Print the JSON schema of the configuration",
			Action: configSchemaCmd,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}

func versionCmd(*cli.Context) error {
	lockbridge.PrintVersion(os.Stdout)
	return nil
}

func configCmd(cliCtx *cli.Context) error {
	content := config.DefaultMandatoryVars
	if !cliCtx.Bool(config.FlagMinConfig) {
		content += config.DefaultVars + config.DefaultValues
	}
	_, err := os.Stdout.WriteString(content)
	return err
}

func configSchemaCmd(*cli.Context) error {
	schema, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(schema, '\n'))
	return err
}
