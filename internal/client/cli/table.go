package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/client/validation"
	"golang.org/x/term"
)

const (
	defaultTableWidth = 100
	minColumnWidth    = 6
)

// termWidth is a test seam for the terminal width.
var termWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTableWidth
	}
	return w
}

var tableHeader = []string{"NAME", "COMPANY", "ROLE", "COUNTRY", "ID"}

// renderTable prints users as aligned columns. Cells are truncated so a row
// fits in width; the ID column is never truncated.
func renderTable(w io.Writer, users []models.User, width int) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found")
		return
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.FullName(), u.Company.Name, u.Company.Title, u.Address.Country, u.ID})
	}

	limit := columnLimit(rows, width)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader, "\t"))
	for _, r := range rows {
		cells := make([]string, len(r))
		for i, c := range r {
			if i < len(r)-1 {
				c = truncate(c, limit)
			}
			cells[i] = c
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}

// columnLimit is the widest text cell allowed so that four text columns, the
// ID column and padding fit in width.
func columnLimit(rows [][]string, width int) int {
	idWidth := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(r[len(r)-1]); n > idWidth {
			idWidth = n
		}
	}
	textCols := len(tableHeader) - 1
	limit := (width - idWidth - 2*len(tableHeader)) / textCols
	if limit < minColumnWidth {
		limit = minColumnWidth
	}
	return limit
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

func printFieldErrors(w io.Writer, errs validation.FieldErrors) {
	for _, f := range errs.Fields() {
		fmt.Fprintf(w, "  %s: %s\n", f.Label(), errs.Get(f))
	}
}
