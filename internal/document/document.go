// Package document triggers actions on generated customer documents.
package document

import (
	"context"

	"github.com/sirupsen/logrus"
)

const (
	// ActionDownload requests file to be downloaded
	ActionDownload = "download"
	// ActionPrint requests file to be printed
	ActionPrint = "print"
)

// Requester performs action on file
type Requester interface {
	Request(ctx context.Context, fileName string) error
}

// RequesterFunc adapts function to Requester
type RequesterFunc func(ctx context.Context, fileName string) error

func (f RequesterFunc) Request(ctx context.Context, fileName string) error {
	return f(ctx, fileName)
}

type logRequester struct {
	action string
}

// LogRequester only records that action was requested, no file content is produced
func LogRequester(action string) Requester {
	return &logRequester{action: action}
}

func (r *logRequester) Request(_ context.Context, fileName string) error {
	logrus.WithFields(logrus.Fields{"action": r.action, "fileName": fileName}).Info("document requested")
	return nil
}
