package main

import (
	"fmt"

	"github.com/DS123-ally/websummary"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	req := deps.Runner.Run(deps.Ctx, c.URL, websummary.Length(c.Length), websummary.ChainType(c.Chain))

	if req.Failed() {
		fmt.Fprintf(deps.Stderr, "error: %s\n", req.ErrMessage)
		return websummary.Errorf(req.ErrCode, "%s", req.ErrMessage)
	}

	fmt.Fprintln(deps.Stdout, req.Summary())

	if c.Debug && req.Result != nil && req.Result.Debug != nil {
		d := req.Result.Debug
		fmt.Fprintf(deps.Stderr, "model=%s chain=%s documents=%d model_calls=%d summary_chars=%d elapsed=%s\n",
			d.Model, d.Chain, d.DocumentCount, d.ModelCalls, d.SummaryChars, d.Elapsed)
		fmt.Fprintf(deps.Stderr, "prompt:\n%s\n", d.Prompt)
	}

	return nil
}
