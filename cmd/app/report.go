package main

import (
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/GildedTros_Go/internal/domain"
	"github.com/osse101/GildedTros_Go/internal/inventory"
)

// writeReport prints the shelf after every simulated day, starting with the
// initial stock as day 0.
func writeReport(w io.Writer, days []*inventory.Report, items []*domain.Item, initial []domain.State) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if err := writeDay(p, tw, 0, items, initial); err != nil {
		return err
	}
	for day, report := range days {
		after := make([]domain.State, len(report.Changes))
		for i, c := range report.Changes {
			after[i] = c.After
		}
		if err := writeDay(p, tw, day+1, items, after); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := p.Fprintf(w, "%d items advanced over %d days\n", len(items), len(days))
	return err
}

func writeDay(p *message.Printer, w io.Writer, day int, items []*domain.Item, states []domain.State) error {
	if _, err := p.Fprintf(w, "-------- day %d --------\n", day); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "name\tsellIn\tquality\n"); err != nil {
		return err
	}
	for i, item := range items {
		if _, err := p.Fprintf(w, "%s\t%d\t%d\n", item.Name, states[i].SellIn, states[i].Quality); err != nil {
			return err
		}
	}
	_, err := p.Fprintln(w)
	return err
}
