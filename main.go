package main

import (
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/fret/internal/config"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if nil != err {
			return fmt.Errorf("unable to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var p Program
	if err := p.Init(cfg); nil != err {
		return err
	}
	defer p.Deinit()

	return p.Run()
}
