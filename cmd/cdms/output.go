package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"cdms/internal/dto"
	apperrors "cdms/internal/errors"
	"cdms/internal/models"
)

func printJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.SystemInternalError, err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// flushTable writes the tabwriter output, trimming trailing padding
func flushTable(w io.Writer, sb *strings.Builder, tw *tabwriter.Writer) {
	tw.Flush()
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func printCustomerTable(w io.Writer, customers []*dto.CustomerResponse) {
	if len(customers) == 0 {
		fmt.Fprintln(w, "No customers found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tPHONE\tSTATE\tPURCHASE")
	for _, c := range customers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.State, c.PurchaseAmount)
	}
	flushTable(w, &sb, tw)
}

func printSegmentTable(w io.Writer, segments []*models.SegmentResult) {
	if len(segments) == 0 {
		fmt.Fprintln(w, "No customers found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFULL NAME\tSTATE\tSEGMENT")
	for _, s := range segments {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.FullName, s.State, s.Category)
	}
	flushTable(w, &sb, tw)
}

func customerResponses(customers []models.Customer) []*dto.CustomerResponse {
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, dto.NewCustomerResponse(&customers[i]))
	}
	return out
}

// parseID parses a customer id argument
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return 0, apperrors.New(apperrors.CustomerInvalidID,
			fmt.Sprintf("customer_id: %q is not a non-negative integer", s))
	}
	return uint(id), nil
}
