package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/fermlab/kust.go/pkg/kust"
)

var (
	device     string
	evalOnly   bool
	outputJSON bool
)

func init() {
	flag.StringVar(&device, "device", device, "Serial device to connect on startup.")
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

const boxKey = "$box"

func boxFrom(c *ishell.Context) *kust.Box {
	return c.Get(boxKey).(*kust.Box)
}

func display(c *ishell.Context, v interface{}) {
	if outputJSON {
		b, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(b))
		return
	}
	c.Println(v)
}

var commands = []*ishell.Cmd{
	{
		Name: "connect",
		Help: "connect <device>: open the interface box",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("usage: connect <device>"))
				return
			}
			if !boxFrom(c).Connect(c.Args[0]) {
				c.Err(fmt.Errorf("cannot open %s", c.Args[0]))
			}
		},
	},
	{
		Name: "ready",
		Help: "check whether the interface box answers",
		Func: func(c *ishell.Context) {
			display(c, boxFrom(c).IsReady())
		},
	},
	{
		Name: "firmware",
		Help: "read the firmware identification",
		Func: func(c *ishell.Context) {
			fw := boxFrom(c).FirmwareVersion()
			if fw == "" {
				c.Err(fmt.Errorf("no firmware version available"))
				return
			}
			display(c, fw)
		},
	},
	{
		Name: "temps",
		Help: "read the four temperature channels [°C]",
		Func: func(c *ishell.Context) {
			t := boxFrom(c).Temperatures()
			if t == nil {
				c.Err(fmt.Errorf("temperature read failed"))
				return
			}
			display(c, t)
		},
	},
	{
		Name: "speeds",
		Help: "read the six stirrer speeds [rpm]",
		Func: func(c *ishell.Context) {
			s := boxFrom(c).RotationalSpeeds()
			if s == nil {
				c.Err(fmt.Errorf("speed read failed"))
				return
			}
			display(c, s)
		},
	},
	{
		Name: "oxygen",
		Help: "read the dissolved-oxygen sensor current [mA]",
		Func: func(c *ishell.Context) {
			ma, ok := boxFrom(c).OxygenCurrent()
			if !ok {
				c.Err(fmt.Errorf("oxygen read failed"))
				return
			}
			display(c, ma)
		},
	},
	{
		Name: "reset",
		Help: "reset pending errors on the box",
		Func: func(c *ishell.Context) {
			boxFrom(c).ResetErrors()
		},
	},
}

func main() {
	flag.Parse()

	shell := ishell.New()
	shell.SetPrompt("[kust] > ")
	box := kust.NewBox(kust.Config{})
	shell.Set(boxKey, box)
	for _, cmd := range commands {
		shell.AddCmd(cmd)
	}

	if device != "" && !box.Connect(device) {
		shell.Printf("cannot open %s\n", device)
	}

	if evalOnly {
		shell.Process(flag.Args()...)
		return
	}
	shell.Run()
}
