package main

import (
	"fmt"

	"github.com/fwojciec/woldoc"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Archive == nil {
		fmt.Fprintln(deps.Stderr, "error: no archive configured. Set WOLDOC_DB or pass --db.")
		return woldoc.Errorf(woldoc.EINVALID, "no archive configured")
	}

	if c.ID == "" {
		return c.list(deps)
	}

	if c.Delete {
		if err := deps.Archive.DeleteRecord(deps.Ctx, c.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted record %s\n", c.ID)
		return nil
	}

	rec, err := deps.Archive.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}
	_, err = fmt.Fprintln(deps.Stdout, rec.Content)
	return err
}

func (c *HistoryCmd) list(deps *Dependencies) error {
	filter := woldoc.RecordFilter{Limit: c.Limit}
	if c.Kind != "" {
		filter.Kind = &c.Kind
	}

	records, err := deps.Archive.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", woldoc.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Kind, r.SourceURL)
	}
	return nil
}
