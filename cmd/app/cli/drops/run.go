package drops

import (
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"text/tabwriter"

	"github.com/felixge/fgprof"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/collectionlog/backend/internal/model"
	"github.com/collectionlog/backend/internal/util/droputil"
)

func run(c *cli.Context, deps CommandDeps) error {
	itemID := c.Int("item-id")
	if itemID < 0 {
		return errors.Errorf("item id must not be negative, got %d", itemID)
	}

	if c.Bool("profile") {
		http.DefaultServeMux.Handle("/debug/fgprof", fgprof.Handler())
		go func() {
			log.Print(http.ListenAndServe("127.0.0.1:6060", nil))
		}()
	}

	resp, err := deps.ItemDropsService.GetItemDrops(c.Context, itemID)
	if err != nil {
		return errors.Wrapf(err, "failed to build drops of item %d", itemID)
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, resp)
	}
	return writeTable(c.App.Writer, resp)
}

func writeJSON(w io.Writer, resp *model.ItemDropsResponse) error {
	b, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// writeTable prints the sources most likely first.
func writeTable(w io.Writer, resp *model.ItemDropsResponse) error {
	fmt.Fprintf(w, "%s (#%d)\n", resp.ItemName, resp.ItemID)
	if resp.SourceURL.Valid {
		fmt.Fprintln(w, resp.SourceURL.String)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tTYPE\tRARITY\tCHANCE\tQUANTITY\tNOTES")
	for _, s := range droputil.SortForDisplay(resp.Sources) {
		chance := "-"
		if s.DropRateNumeric.Valid {
			chance = fmt.Sprintf("%.4f%%", s.DropRateNumeric.Float64*100)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.SourceName,
			s.Type,
			orDash(s.DropRateRaw.String),
			chance,
			orDash(s.Quantity.String),
			orDash(s.Notes.String),
		)
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
