//go:build !linux

package main

import "github.com/sirupsen/logrus"

func prepareDisplay(logrus.FieldLogger) {}
