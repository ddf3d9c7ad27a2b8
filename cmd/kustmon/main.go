package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/fermlab/kust.go/pkg/framework"
	"github.com/fermlab/kust.go/pkg/kust"
	"github.com/fermlab/kust.go/pkg/monitor"
	"github.com/fermlab/kust.go/pkg/monitor/export"
	"github.com/fermlab/kust.go/pkg/monitor/mqtt"
)

var (
	device   = "/dev/ttyUSB0"
	interval = time.Second
	xlsxPath string
	mqttURL  string
)

func init() {
	if val := os.Getenv("KUST_DEVICE"); val != "" {
		device = val
	}
	if val := os.Getenv("KUST_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&device, "device", device, "Serial device of the interface box.")
	flag.DurationVar(&interval, "interval", interval, "Poll interval.")
	flag.StringVar(&xlsxPath, "xlsx", xlsxPath, "Record samples into this spreadsheet.")
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "Publish samples to this MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	box := kust.NewBox(kust.Config{})
	if !box.Connect(device) {
		log.Fatalf("cannot open interface box on %s", device)
	}
	box.ResetErrors()
	log.Printf("firmware: %s", box.FirmwareVersion())

	sinks := []monitor.Sink{monitor.Console{}}
	if xlsxPath != "" {
		wb, err := export.NewWorkbook(xlsxPath)
		if err != nil {
			log.Fatalln(err)
		}
		sinks = append(sinks, wb)
	}
	if mqttURL != "" {
		pub, err := mqtt.NewPublisherFromURL(mqttURL)
		if err != nil {
			log.Fatalln(err)
		}
		if err = pub.Connect(); err != nil {
			log.Fatalln(err)
		}
		sinks = append(sinks, pub)
	}

	sampler := monitor.NewSampler(box, sinks...)
	sampler.Interval = interval

	runner := framework.NewRunner().HandleSignals()
	runner.Go(framework.NamedRun("sampler", sampler))
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
