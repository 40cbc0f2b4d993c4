package main

type Notifier interface {
	NotifyRunResults(report RunReport, runErr error) error
}
