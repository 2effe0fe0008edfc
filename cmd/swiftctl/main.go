// swiftctl validates BIC and IBAN codes and generates SWIFT payment
// messages (ISO 20022 pain.001 XML and MT103 text) from JSON payment
// files.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Livinu/swift-tools/internal/application/dto"
	"github.com/Livinu/swift-tools/internal/application/usecase"
	"github.com/Livinu/swift-tools/internal/domain/registry"
	"github.com/Livinu/swift-tools/internal/domain/service"
	"github.com/Livinu/swift-tools/internal/infrastructure/config"
	"github.com/Livinu/swift-tools/internal/infrastructure/payload"
	"github.com/Livinu/swift-tools/pkg/observability"
)

const usageText = `Usage: swiftctl <command> [flags]

Commands:
  validate-bic      Validate a BIC/SWIFT code
  validate-iban     Validate an IBAN
  batch-validate    Validate a list of codes from a file or stdin
  generate-pain001  Generate an ISO 20022 pain.001 XML document
  generate-mt103    Generate an MT103 message

Run "swiftctl <command> -h" for command flags.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	cfg := config.Load()
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	a := &app{
		cfg:      cfg,
		registry: registry.Default(),
		out:      os.Stdout,
	}
	a.validateBIC = usecase.NewValidateBIC(a.registry, logger)
	a.validateIBAN = usecase.NewValidateIBAN(a.registry, logger)
	a.batchValidate = usecase.NewBatchValidate(a.registry, logger)
	a.generatePain001 = usecase.NewGeneratePain001(service.NewPain001Generator(), a.registry, logger)
	a.generateMT103 = usecase.NewGenerateMT103(service.NewMT103Generator(), a.registry, logger)

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "validate-bic":
		err = a.runValidateBIC(args)
	case "validate-iban":
		err = a.runValidateIBAN(args)
	case "batch-validate":
		err = a.runBatchValidate(args)
	case "generate-pain001":
		err = a.runGeneratePain001(args)
	case "generate-mt103":
		err = a.runGenerateMT103(args)
	case "-h", "--help", "help":
		fmt.Fprint(os.Stderr, usageText)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usageText)
		os.Exit(2)
	}
	if err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "swiftctl: %v\n", err)
		os.Exit(1)
	}
}

// exitError carries a bare exit code for outcomes already reported on
// stdout, such as a failed validation.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

type app struct {
	cfg      config.Config
	registry *registry.Registry
	out      io.Writer

	validateBIC     *usecase.ValidateBIC
	validateIBAN    *usecase.ValidateIBAN
	batchValidate   *usecase.BatchValidate
	generatePain001 *usecase.GeneratePain001
	generateMT103   *usecase.GenerateMT103
}

func (a *app) runValidateBIC(args []string) error {
	fs := flag.NewFlagSet("validate-bic", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Output the result as JSON")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: swiftctl validate-bic [flags] <bic>")
		os.Exit(2)
	}

	res := a.validateBIC.Execute(context.Background(), dto.ValidateBICRequest{BIC: fs.Arg(0)})
	if *asJSON {
		if err := writeJSON(a.out, res); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(a.out, res.Message)
	}
	if !res.Valid {
		return exitError{code: 1}
	}
	return nil
}

func (a *app) runValidateIBAN(args []string) error {
	fs := flag.NewFlagSet("validate-iban", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Output the result as JSON")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: swiftctl validate-iban [flags] <iban>")
		os.Exit(2)
	}

	res := a.validateIBAN.Execute(context.Background(), dto.ValidateIBANRequest{IBAN: fs.Arg(0)})
	if *asJSON {
		if err := writeJSON(a.out, res); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(a.out, res.Message)
	}
	if !res.Valid {
		return exitError{code: 1}
	}
	return nil
}

func (a *app) runBatchValidate(args []string) error {
	fs := flag.NewFlagSet("batch-validate", flag.ExitOnError)
	kind := fs.String("type", "iban", `Code type: "bic" or "iban"`)
	input := fs.String("input", "-", "File with one code per line, or - for stdin")
	asJSON := fs.Bool("json", false, "Output the report as JSON")
	fs.Parse(args)

	codes, err := readLines(*input)
	if err != nil {
		return err
	}

	report, err := a.batchValidate.Execute(context.Background(), dto.BatchValidateRequest{
		Type:  *kind,
		Codes: codes,
	})
	if err != nil {
		return err
	}

	if *asJSON {
		if err := writeJSON(a.out, report); err != nil {
			return err
		}
	} else {
		for _, line := range report.Results {
			status := "OK  "
			if !line.Valid {
				status = "FAIL"
			}
			fmt.Fprintf(a.out, "%s %s: %s\n", status, line.Input, line.Message)
		}
		fmt.Fprintf(a.out, "%d checked, %d valid, %d invalid\n", report.Total, report.Valid, report.Invalid)
	}
	if report.Invalid > 0 {
		return exitError{code: 1}
	}
	return nil
}

func (a *app) runGeneratePain001(args []string) error {
	fs := flag.NewFlagSet("generate-pain001", flag.ExitOnError)
	input := fs.String("input", "", "JSON payment file (required)")
	output := fs.String("output", "", "Write the document to this file instead of stdout")
	precheck := fs.Bool("precheck", false, "Validate every debtor/creditor IBAN and BIC before generating")
	fs.Parse(args)

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: swiftctl generate-pain001 -input <file> [flags]")
		os.Exit(2)
	}

	file, err := payload.Load(*input)
	if err != nil {
		return err
	}
	req := file.Pain001Request(a.cfg.DefaultCurrency, a.cfg.DefaultInitiator)
	req.Precheck = *precheck

	doc, err := a.generatePain001.Execute(context.Background(), req)
	if err != nil {
		return err
	}
	return a.writeDocument(doc.Content, *output)
}

func (a *app) runGenerateMT103(args []string) error {
	fs := flag.NewFlagSet("generate-mt103", flag.ExitOnError)
	input := fs.String("input", "", "JSON payment file (required)")
	output := fs.String("output", "", "Write the message to this file instead of stdout")
	valueDate := fs.String("value-date", "", "Value date as YYYY-MM-DD (default today)")
	precheck := fs.Bool("precheck", false, "Validate debtor and creditor IBAN and BIC before generating")
	fs.Parse(args)

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: swiftctl generate-mt103 -input <file> [flags]")
		os.Exit(2)
	}

	file, err := payload.Load(*input)
	if err != nil {
		return err
	}
	req := file.MT103Request(a.cfg.DefaultCurrency)
	req.Precheck = *precheck
	if *valueDate != "" {
		d, err := time.Parse("2006-01-02", *valueDate)
		if err != nil {
			return fmt.Errorf("invalid value date %q: %w", *valueDate, err)
		}
		req.ValueDate = d
	}

	doc, err := a.generateMT103.Execute(context.Background(), req)
	if err != nil {
		return err
	}
	return a.writeDocument(doc.Content, *output)
}

func (a *app) writeDocument(content, path string) error {
	if path == "" {
		_, err := io.WriteString(a.out, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
