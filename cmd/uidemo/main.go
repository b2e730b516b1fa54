// Command uidemo is a thin operator console over ApiTransact, letting a
// developer smoke-test the ExternApi surface without a real device. It owns
// no flows, no reporting, and no device lifecycle — it drives no more than
// the one interface this module exposes.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/uicore/pkg/apiserver"
	"github.com/devicelab-dev/uicore/pkg/controller"
	"github.com/devicelab-dev/uicore/pkg/dom"
	"github.com/devicelab-dev/uicore/pkg/externapi"
	"github.com/devicelab-dev/uicore/pkg/mockcontroller"
	"github.com/devicelab-dev/uicore/pkg/uiconfig"
	"github.com/devicelab-dev/uicore/pkg/uidriver"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "uidemo",
		Usage:   "operator console over uicore's ExternApi transaction boundary",
		Version: version,
		Commands: []*cli.Command{
			transactCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var transactCommand = &cli.Command{
	Name:  "transact",
	Usage: "invoke a single ApiTransact call against a scripted mock device",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "function", Aliases: []string{"f"}, Required: true, Usage: "function id, e.g. UiDriver.findWidgets"},
		&cli.StringFlag{Name: "caller", Value: `{"type":4,"value":""}`, Usage: "caller value, as JSON"},
		&cli.StringFlag{Name: "params", Value: "[]", Usage: "params array, as JSON"},
		&cli.StringFlag{Name: "snapshot", Usage: "path to a JSON DOM snapshot file the mock controller should serve"},
		&cli.StringFlag{Name: "config", Usage: "path to a uiconfig YAML file (defaults to built-in tunables)"},
	},
	Action: runTransact,
}

func runTransact(c *cli.Context) error {
	cfg := uiconfig.Default()
	if path := c.String("config"); path != "" {
		loaded, err := uiconfig.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = *loaded
	}

	snap, err := loadSnapshot(c.String("snapshot"))
	if err != nil {
		return err
	}

	registry := controller.NewRegistry()
	registry.RegisterController(mockcontroller.New(mockcontroller.Config{Name: "uidemo-mock"}, snap), controller.High)

	driver := uidriver.New("uidemo-device", registry, cfg.ToOpArgs())
	driver.SetScrollSettleWaitMs(cfg.ScrollSettleWaitMs)
	server := externapi.NewServer()
	apiserver.RegisterHandlers(server.Dispatcher, driver)

	result := server.ApiTransact(c.String("function"), c.String("caller"), c.String("params"))
	fmt.Fprintln(c.App.Writer, result)
	return nil
}

func loadSnapshot(path string) (*dom.Snapshot, error) {
	const empty = `{"attributes":{},"children":[]}`
	if path == "" {
		snap, err := dom.Parse([]byte(empty))
		if err != nil {
			return nil, err
		}
		return snap, nil
	}
	data, err := os.ReadFile(path) //#nosec G304 -- operator-provided demo fixture
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snap, err := dom.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}
