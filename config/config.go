package config

import "github.com/namsral/flag"

type Config struct {
	InputFile string
	Debug     bool
	Sort      bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("boggler", flag.ContinueOnError)
	fs.StringVar(&c.InputFile, "input-file", "", "game file to read; empty means stdin")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&c.Sort, "sort", true, "sort output words; otherwise discovery order")
	err := fs.Parse(args)
	return err
}
