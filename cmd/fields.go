package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"

	"github.com/harper-global/coi-cli/internal/pdf"
)

var fieldsXLSX string

var fieldsCmd = &cobra.Command{
	Use:   "fields <template.pdf>",
	Short: "List the interactive fields of a form template",
	Long:  "Dumps every terminal AcroForm field with its qualified name and type. Used to build field mappings for new form revisions.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, err := pdf.Open(args[0])
		if err != nil {
			return err
		}
		fields := tpl.Fields()

		if fieldsXLSX != "" {
			return writeFieldsXLSX(fieldsXLSX, fields)
		}
		for _, f := range fields {
			fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s\n", f.Type, f.Qualified)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d fields\n", len(fields))
		return nil
	},
}

func writeFieldsXLSX(path string, fields []*pdf.Field) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Fields")
	if err != nil {
		return eris.Wrap(err, "add worksheet")
	}

	header := sheet.AddRow()
	for _, title := range []string{"Qualified Name", "Short Name", "Type", "On State"} {
		header.AddCell().SetString(title)
	}
	for _, f := range fields {
		row := sheet.AddRow()
		row.AddCell().SetString(f.Qualified)
		row.AddCell().SetString(f.Name)
		row.AddCell().SetString(f.Type)
		row.AddCell().SetString(f.OnState)
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "write field inventory %s", path)
	}
	return nil
}

func init() {
	fieldsCmd.Flags().StringVar(&fieldsXLSX, "xlsx", "", "write the field inventory to an xlsx file")
	rootCmd.AddCommand(fieldsCmd)
}
