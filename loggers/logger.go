package logger

import "github.com/sirupsen/logrus"

var Logger = logrus.New()

func Init() {
	Logger.SetLevel(logrus.InfoLevel)
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
