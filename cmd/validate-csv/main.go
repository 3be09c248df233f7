package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/pkg/validate"
	"github.com/spf13/cobra"
)

// Коды выхода: 1 — ошибка запуска, 2 — файл не прошёл проверку.
const (
	exitFailure    = 1
	exitValidation = 2
)

// CLI-приложение для офлайн-проверки CSV-файлов SKU,Quantity.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, validate.ErrInvalidFile) {
			os.Exit(exitValidation)
		}
		os.Exit(exitFailure)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate-csv [file]",
		Short:        "Validate an SKU,Quantity CSV file without calling remote services",
		Long:         "validate-csv runs the same local checks as the upload service. Without a file argument it reads stdin.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runValidate,
	}

	cmd.Flags().StringP("format", "f", string(validate.OutputReport), "output: report | eligible")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	v := validate.NewCSVValidator()

	var (
		summary string
		err     error
	)
	if len(args) == 0 {
		// stdin: тип файла не проверяем, считаем его CSV
		summary, err = validate.ValidateReader(ctx, v, domain.UploadFile{
			Name:      "stdin",
			MediaType: validate.CSVMediaType,
			Body:      cmd.InOrStdin(),
		}, validate.OutputFormat(format), out)
	} else {
		summary, err = validate.ValidateFile(ctx, v, args[0], validate.OutputFormat(format), out)
	}

	if err != nil {
		if summary != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "validation: %v (%s)\n", err, summary)
		}
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "validation ok (%s)\n", summary)
	return nil
}
