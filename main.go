package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/Andre-4949/y-plus-estimation/batch"
	"github.com/Andre-4949/y-plus-estimation/calculator"
	"github.com/Andre-4949/y-plus-estimation/console"
	"github.com/Andre-4949/y-plus-estimation/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	addr := flag.String("addr", "", "serve the calculator over websocket on this address, e.g. :9000")
	cases := flag.String("cases", "", "run the estimations from this TOML case file")
	workers := flag.Int("workers", calculator.Cfg().Workers, "batch worker count")
	flag.Parse()

	switch {
	case *addr != "":
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
		s := server.NewServer(*addr, upgrader)
		if err := s.Serve(); err != nil {
			log.Fatal("serve: ", err)
		}
	case *cases != "":
		runBatch(*cases, *workers)
	default:
		runInteractive()
	}
}

func runBatch(path string, workers int) {
	cs, err := batch.Load(path)
	if err != nil {
		log.Fatal("load cases: ", err)
	}
	failed := 0
	for _, o := range batch.Run(cs, workers) {
		if o.Err != nil {
			failed++
			continue
		}
		if o.Name != "" {
			log.Info("case: ", o.Name)
		}
		console.PrintReport(os.Stdout, o.Result)
	}
	if failed > 0 {
		log.Fatalf("%d of %d cases failed", failed, len(cs))
	}
}

func runInteractive() {
	cond, err := console.GatherConditions(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal("read inputs: ", err)
	}
	res, err := calculator.NewCalculator().Estimate(cond)
	if err != nil {
		log.Fatal(err)
	}
	console.PrintReport(os.Stdout, res)
}
