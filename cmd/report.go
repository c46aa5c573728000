package cmd

import (
	"fmt"

	"airport-etl/internal/engine"
	"airport-etl/internal/schema"

	"github.com/fatih/color"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("!")
	errText  = color.New(color.FgRed).SprintFunc()
)

func statusMark(status string) string {
	if status == "OK" {
		return okMark
	}
	return warnMark
}

func printLoadReport(results []schema.LoadResult) {
	fmt.Println("\n📊 Summary Report (Load Order):")
	total := 0
	for i, r := range results {
		fmt.Printf("[%s] [%02d/%02d] %-10s : %d rows (Source: %d, %s) - %s\n",
			statusMark(r.Status), i+1, len(results), r.TableName, r.Actual, r.Rows, r.Source, r.Status)
		if r.ErrorMsg != "" {
			fmt.Printf("    └ Error: %s\n", errText(r.ErrorMsg))
		}
		total += r.Actual
	}
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Total Rows: %d\n", total)
}

func printVerifyReport(report *engine.Report) {
	fmt.Println("\n📊 Verification Report:")
	for i, r := range report.Tables {
		fmt.Printf("[%s] [%02d/%02d] %-16s : %d rows - %s\n",
			statusMark(r.Status), i+1, len(report.Tables), r.TableName, r.Actual, r.Status)
		if r.ErrorMsg != "" {
			fmt.Printf("    └ Error: %s\n", errText(r.ErrorMsg))
		}
	}
	if !report.ViewExists {
		fmt.Printf("[%s] %-24s : not created\n", warnMark, schema.HeadingsView)
		return
	}
	fmt.Printf("[%s] %-24s : %d rows (Expected: %d) - %s\n",
		statusMark(report.ViewStatus), schema.HeadingsView, report.ViewRows, report.ExpectedViewRows, report.ViewStatus)
}
