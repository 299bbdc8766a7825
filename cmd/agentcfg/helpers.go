package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joss/agentcfg/internal/config"
	"github.com/joss/agentcfg/internal/domain"
	"github.com/joss/agentcfg/internal/executor"
	"github.com/joss/agentcfg/internal/intent"
)

// execute runs one request through the core and records it in the
// history. The report string comes back verbatim; errors are returned
// for the caller to surface.
func execute(request string, explicit domain.Params) (string, error) {
	exec := executor.New(*config.GetPaths(), log)

	started := time.Now()
	resp, err := exec.Execute(request, explicit)

	action := intent.Classify(request)
	report := ""
	if resp != nil {
		action = resp.Action
		report = resp.Report
	}
	recorder.Record(action, request, started, report, err)

	if err != nil {
		return "", err
	}
	return resp.Report, nil
}

// runRequest executes a request and prints the outcome, exiting on
// failure. Shared by every command that goes through the core.
func runRequest(request string, explicit domain.Params) {
	report, err := execute(request, explicit)
	if err != nil {
		exitOnError(err)
	}
	fmt.Println(report)
}

// exitOnError prints the error and exits non-zero.
func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
