package document

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLogRequester(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	err := LogRequester(ActionPrint).Request(context.Background(), "hop-dong-abc.docx")
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry, "request must be logged")
	require.Equal(t, ActionPrint, entry.Data["action"])
	require.Equal(t, "hop-dong-abc.docx", entry.Data["fileName"])
}

func TestRequesterFunc(t *testing.T) {
	var requested string
	r := RequesterFunc(func(_ context.Context, fileName string) error {
		requested = fileName
		return nil
	})

	require.NoError(t, r.Request(context.Background(), "bao-gia-xyz.docx"))
	require.Equal(t, "bao-gia-xyz.docx", requested)
}
