package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

func main() {
	log := newLogger()

	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "render":
			renderCmd(os.Args[2:], log)
			return
		case "export":
			exportCmd(os.Args[2:], log)
			return
		case "db":
			dbCmd(os.Args[2:], log)
			return
		case "seed":
			seedCmd(os.Args[2:])
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: worldgen <render|export|db|seed> [flags]")
	os.Exit(2)
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	levelName, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
