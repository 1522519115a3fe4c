package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/inventory-rest/internal/client"
	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

var recordHeader = []string{"ID", "TITLE", "ARTIST", "YEAR"}

func newRecordsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record"},
		Short:   "Manage records",
	}
	cmd.AddCommand(
		newRecordsListCmd(opts),
		newRecordsGetCmd(opts),
		newRecordsCreateCmd(opts),
		newRecordsUpdateCmd(opts),
		newRecordsDeleteCmd(opts),
	)
	return cmd
}

func recordService(opts *globalOptions) (*client.RecordService, error) {
	return client.NewRecordService(opts.server, opts.clientOptions()...)
}

func recordRow(r models.Record) []string {
	return []string{idString(r.ID), r.Title, r.Artist, strconv.Itoa(r.Year)}
}

func newRecordsListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := recordService(opts)
			if err != nil {
				return err
			}
			records, err := svc.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(records))
			for _, r := range records {
				rows = append(rows, recordRow(r))
			}
			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			return p.print(records, recordHeader, rows)
		},
	}
}

func newRecordsGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, err := recordService(opts)
			if err != nil {
				return err
			}
			record, err := svc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			return p.print(record, recordHeader, [][]string{recordRow(record)})
		},
	}
}

type recordFlags struct {
	title  string
	artist string
	year   int
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Record title")
	cmd.Flags().StringVar(&f.artist, "artist", "", "Record artist")
	cmd.Flags().IntVar(&f.year, "year", 0, "Release year")
	_ = cmd.MarkFlagRequired("title")
}

func (f *recordFlags) record() models.Record {
	return models.Record{Title: f.title, Artist: f.artist, Year: f.year}
}

func newRecordsCreateCmd(opts *globalOptions) *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := recordService(opts)
			if err != nil {
				return err
			}
			record := flags.record()
			id, err := svc.Create(cmd.Context(), record)
			if err != nil {
				return err
			}
			record.ID = models.IntPtr(id)

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			if p.format != formatTable {
				return p.print(record, nil, nil)
			}
			return p.message("created record %d", id)
		},
	}
	flags.register(cmd)
	return cmd
}

func newRecordsUpdateCmd(opts *globalOptions) *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, err := recordService(opts)
			if err != nil {
				return err
			}
			record := flags.record()
			record.ID = models.IntPtr(id)
			if err := svc.Update(cmd.Context(), record); err != nil {
				return err
			}

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			return p.message("updated record %d", id)
		},
	}
	flags.register(cmd)
	return cmd
}

func newRecordsDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, err := recordService(opts)
			if err != nil {
				return err
			}
			if err := svc.Delete(cmd.Context(), models.Record{ID: models.IntPtr(id)}); err != nil {
				return err
			}

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			return p.message("deleted record %d", id)
		},
	}
}
