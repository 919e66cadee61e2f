package main

import (
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

const defaultBaseURL = "http://localhost:8080"

type app struct {
	out     io.Writer
	baseURL string
	asJSON  bool
	client  *http.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, client: &http.Client{Timeout: 15 * time.Second}}

	root := &cobra.Command{
		Use:           "musicschool",
		Short:         "Browse the music school course catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.baseURL, "api", defaultBaseURL, "API base URL")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print raw JSON instead of a table")

	root.AddCommand(a.coursesCmd(), a.optionsCmd())
	return root
}
