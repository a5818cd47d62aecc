package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wedsync-venue-api/pkg/log"
)

func main() {
	log.Configure(os.Getenv("LOG_LEVEL"))

	if err := newRootCmd(newApp(os.Stdout)).Execute(); err != nil {
		logrus.WithError(err).Error("queuectl: command failed")
		os.Exit(1)
	}
}
