package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"treehouse-guestlist/internal/config"
)

func TestRun_Transcript(t *testing.T) {
	for _, store := range []string{"memory", "sqlite"} {
		t.Run(store, func(t *testing.T) {
			cfg := &config.Config{Store: store, DumpFormat: "text", LogLevel: "error"}
			var out, errOut bytes.Buffer

			err := run(context.Background(), cfg, strings.NewReader("Steve\nzoe\n\n"), &out, &errOut)
			require.NoError(t, err)

			got := out.String()
			require.Contains(t, got, "Welcome to the treehouse, steve\nLactose-free milk is in the fridge\nDo not serve alcohol to steve\n")
			require.Contains(t, got, "zoe is not on the visitor list.\n")
			require.Contains(t, got, "The final list of visitors:\n")
			require.Contains(t, got, "Name: zoe\nAction: probation\nAge: 0\n")
		})
	}
}

func TestRun_RejectsUnknownSettings(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(context.Background(), &config.Config{Store: "redis", DumpFormat: "text"}, strings.NewReader(""), &out, &errOut)
	require.Error(t, err)

	err = run(context.Background(), &config.Config{Store: "memory", DumpFormat: "xml"}, strings.NewReader(""), &out, &errOut)
	require.Error(t, err)

	err = run(context.Background(), &config.Config{Store: "memory", DumpFormat: "text", LogLevel: "verbose"}, strings.NewReader(""), &out, &errOut)
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--dump-format", "json"})
	cmd.SetIn(strings.NewReader("bert\n\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), `"action": "accept"`)
}
