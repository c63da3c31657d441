package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/agglayer/cascadekit/rpc/client"
	"github.com/urfave/cli/v2"
)

const flagURL = "url"

var rpcURLFlag = cli.StringFlag{
	Name:  flagURL,
	Usage: "JSON-RPC endpoint of a running relayer",
	Value: "http://localhost:5576",
}

func statusCmd(cliCtx *cli.Context) error {
	c := client.NewClient(cliCtx.String(flagURL))
	status, err := c.GetStatus()
	if err != nil {
		return err
	}
	claims, err := c.GetClaims()
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(struct {
		Status interface{} `json:"status"`
		Claims interface{} `json:"claims"`
	}{status, claims}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}
