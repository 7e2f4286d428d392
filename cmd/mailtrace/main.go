// cmd/mailtrace/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/clapenergy/mailtrace-render-starter/pkg/config"
	"github.com/clapenergy/mailtrace-render-starter/pkg/csvio"
	"github.com/clapenergy/mailtrace-render-starter/pkg/engine"
	"github.com/clapenergy/mailtrace-render-starter/pkg/match"
	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

func main() {
	app := &cli.App{
		Name:  "mailtrace",
		Usage: "reconcile a mail delivery history against a CRM export",
		Commands: []*cli.Command{
			{
				Name:  "match",
				Usage: "match mail records to CRM records and print summary KPIs",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mail", Usage: "path to the mail history CSV", Required: true},
					&cli.StringFlag{Name: "crm", Usage: "path to the CRM export CSV", Required: true},
					&cli.StringFlag{Name: "out", Usage: "write the full result CSV to this path"},
					&cli.IntFlag{Name: "limit", Usage: "rows shown in the preview table", Value: 20},
				},
				Action: runMatch,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runMatch(c *cli.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	engCfg, err := cfg.EngineConfig()
	if err != nil {
		return err
	}
	eng, err := engine.NewWithConfig(logger, engCfg)
	if err != nil {
		return err
	}

	mail, err := readDataset(c.String("mail"), model.DatasetMail)
	if err != nil {
		return err
	}
	crm, err := readDataset(c.String("crm"), model.DatasetCRM)
	if err != nil {
		return err
	}

	mailGuess := eng.DetectColumns(mail)
	crmGuess := eng.DetectColumns(crm)
	if missing := mailGuess.Mapping.Missing(); len(missing) > 0 {
		return fmt.Errorf("could not detect required columns in %s: %v", c.String("mail"), missing)
	}
	if missing := crmGuess.Mapping.Missing(); len(missing) > 0 {
		return fmt.Errorf("could not detect required columns in %s: %v", c.String("crm"), missing)
	}

	result, err := eng.Run(mail, crm, mailGuess.Mapping, crmGuess.Mapping)
	if err != nil {
		return err
	}

	printSummary(result.Summary)
	printPreview(result.Results, c.Int("limit"))

	if out := c.String("out"); out != "" {
		if err := writeExport(out, result.Results, mailGuess.Mapping, crmGuess.Mapping); err != nil {
			return err
		}
		logger.Info("Wrote result CSV", zap.String("path", out))
	}
	return nil
}

func readDataset(path, name string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return csvio.Read(f, name)
}

func writeExport(path string, results []match.MatchResult, mailMapping, crmMapping model.ColumnMapping) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return csvio.WriteResults(f, results, mailMapping, crmMapping)
}

func printSummary(s match.Summary) {
	fmt.Printf("Mail records:    %d\n", s.TotalMail)
	fmt.Printf("Matched:         %d (%.1f%%)\n", s.Matched, s.MatchRate*100)
	fmt.Printf("Unmatched:       %d\n", s.Unmatched)
	fmt.Printf("Avg confidence:  %.0f\n", s.AvgConfidence)
	fmt.Printf("Unit mismatches: %d\n", s.UnitMismatches)
	fmt.Printf("Unit missing:    %d\n", s.UnitMissing)
	fmt.Println()
}

func printPreview(results []match.MatchResult, limit int) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Mail Address Key", "Status", "Confidence", "Note"})

	shown := 0
	for _, r := range results {
		if limit > 0 && shown >= limit {
			break
		}
		row := []string{r.Mail.Addr.Key(), string(r.Status), "", ""}
		if r.Matched() {
			row[2] = strconv.Itoa(r.Best.Confidence)
			row[3] = r.Best.MatchNote
		}
		table.Append(row)
		shown++
	}
	table.Render()
}
