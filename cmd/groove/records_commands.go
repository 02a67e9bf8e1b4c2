package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"groove/internal/api"
)

func newRecordsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage catalog records",
	}
	cmd.AddCommand(newRecordsListCommand(ctx))
	cmd.AddCommand(newRecordsShowCommand(ctx))
	cmd.AddCommand(newRecordsAddCommand(ctx))
	cmd.AddCommand(newRecordsRemoveCommand(ctx))
	return cmd
}

func newRecordsListCommand(ctx *commandContext) *cobra.Command {
	var (
		artist   string
		album    string
		format   string
		category string
		inStock  bool
		page     int
		limit    int
		sortBy   string
		sortDesc bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := ctx.newClient()
			if err != nil {
				return err
			}

			params := url.Values{}
			setParam(params, "artist", artist)
			setParam(params, "album", album)
			setParam(params, "format", format)
			setParam(params, "category", category)
			if inStock {
				params.Set("inStock", "true")
			}
			if page > 0 {
				params.Set("page", strconv.Itoa(page))
			}
			if limit > 0 {
				params.Set("limit", strconv.Itoa(limit))
			}
			setParam(params, "sortBy", sortBy)
			if sortDesc {
				params.Set("sortOrder", "desc")
			} else if sortBy != "" {
				params.Set("sortOrder", "asc")
			}

			result, err := cli.ListRecords(cmd.Context(), params)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(result.Records))
			for _, record := range result.Records {
				rows = append(rows, []string{
					record.ID,
					record.Artist,
					record.Album,
					record.Format,
					record.Category,
					formatPrice(record.Price),
					formatCount(int(record.Quantity)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Artist", "Album", "Format", "Category", "Price", "Stock"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%s records)\n",
				result.Page, result.TotalPages, formatCount(result.Total))
			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Filter by artist substring")
	cmd.Flags().StringVar(&album, "album", "", "Filter by album substring")
	cmd.Flags().StringVar(&format, "format", "", "Filter by format (vinyl, cd, cassette, digital)")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().BoolVar(&inStock, "in-stock", false, "Only records with stock")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort field")
	cmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort descending")
	return cmd
}

func newRecordsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record including its tracklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := ctx.newClient()
			if err != nil {
				return err
			}
			record, err := cli.GetRecord(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printRecord(cmd, record)
			return nil
		},
	}
}

func newRecordsAddCommand(ctx *commandContext) *cobra.Command {
	var req api.CreateRecordRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := ctx.newClient()
			if err != nil {
				return err
			}
			record, err := cli.CreateRecord(cmd.Context(), req)
			if err != nil {
				return err
			}
			printRecord(cmd, record)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Artist, "artist", "", "Artist name")
	cmd.Flags().StringVar(&req.Album, "album", "", "Album title")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "Unit price")
	cmd.Flags().Int64Var(&req.Quantity, "quantity", 0, "Initial stock")
	cmd.Flags().StringVar(&req.Format, "format", "", "Media format")
	cmd.Flags().StringVar(&req.Category, "category", "", "Genre category")
	cmd.Flags().StringVar(&req.MBID, "mbid", "", "MusicBrainz release id for tracklist enrichment")
	_ = cmd.MarkFlagRequired("artist")
	_ = cmd.MarkFlagRequired("album")
	_ = cmd.MarkFlagRequired("format")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newRecordsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a record from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := ctx.newClient()
			if err != nil {
				return err
			}
			if err := cli.DeleteRecord(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s\n", args[0])
			return nil
		},
	}
}

func printRecord(cmd *cobra.Command, record api.Record) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s by %s\n", record.Album, record.Artist)
	fmt.Fprintf(out, "  ID:       %s\n", record.ID)
	fmt.Fprintf(out, "  Format:   %s\n", record.Format)
	fmt.Fprintf(out, "  Category: %s\n", record.Category)
	fmt.Fprintf(out, "  Price:    %s\n", formatPrice(record.Price))
	fmt.Fprintf(out, "  Stock:    %d\n", record.Quantity)
	if record.MBID != "" {
		fmt.Fprintf(out, "  MBID:     %s\n", record.MBID)
	}
	if len(record.Tracklist) > 0 {
		fmt.Fprintln(out, "  Tracks:")
		for i, track := range record.Tracklist {
			fmt.Fprintf(out, "    %2d. %s\n", i+1, track)
		}
	}
}

func setParam(params url.Values, key, value string) {
	if strings.TrimSpace(value) != "" {
		params.Set(key, strings.TrimSpace(value))
	}
}
